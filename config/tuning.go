package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// tuningFile is the on-disk shape of a tuning override file.
// Sections start from the live values, so omitted keys keep them.
type tuningFile struct {
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Platforms PlatformConfig `yaml:"platforms"`
}

// LoadTuning applies YAML overrides for Player, Physics and Platforms.
// Unknown keys are rejected and nothing is applied on error.
func LoadTuning(r io.Reader) error {
	t := tuningFile{
		Player:    Player,
		Physics:   Physics,
		Platforms: Platforms,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode tuning: %w", err)
	}

	if t.Physics.StepSeconds <= 0 {
		return fmt.Errorf("decode tuning: physics step must be positive")
	}
	for i, p := range t.Platforms.Spawns {
		if p.MinX > p.MaxX {
			return fmt.Errorf("decode tuning: platform %d has min_x > max_x", i)
		}
	}

	Player = t.Player
	Physics = t.Physics
	Platforms = t.Platforms
	return nil
}

// LoadTuningFile opens path and applies it with LoadTuning.
func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %q: %w", path, err)
	}
	defer f.Close()
	return LoadTuning(f)
}

// tuningSettle is how long a tuning file must stay unchanged before it is
// reported.
const tuningSettle = 100 * time.Millisecond

// TuningWatcher reports changes to a tuning file. Reloads are applied by the
// receiver on the game goroutine, never from the watcher goroutine.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning watches the directory holding path, since editors often
// replace files by rename.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll applies the latest pending change, if any. It never blocks.
func (w *TuningWatcher) Poll() (bool, error) {
	select {
	case name, ok := <-w.Events:
		if !ok {
			return false, nil
		}
		return true, LoadTuningFile(name)
	case err, ok := <-w.Errors:
		if !ok {
			return false, nil
		}
		return false, err
	default:
		return false, nil
	}
}

func (w *TuningWatcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	settle := time.NewTimer(tuningSettle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			// every change restarts the wait, so a burst of writes is
			// reported once with its final contents
			settle.Reset(tuningSettle)
		case <-settle.C:
			select {
			case w.Events <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
