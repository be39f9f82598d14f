package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"sort"
)

// AtlasFrame locates one named frame on an atlas page.
type AtlasFrame struct {
	Name string
	Page string // page image path, relative to the atlas data file
	Rect image.Rectangle
}

// Atlas is the frame table of a TexturePacker atlas or multiatlas.
type Atlas struct {
	Pages  []string
	Frames map[string]AtlasFrame
}

// Names returns the frame names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.Frames))
	for n := range a.Frames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type packerRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type packerFrame struct {
	Filename string     `json:"filename"`
	Frame    packerRect `json:"frame"`
	Rotated  bool       `json:"rotated"`
}

type packerMeta struct {
	Image string `json:"image"`
}

type packerPage struct {
	Image  string          `json:"image"`
	Frames json.RawMessage `json:"frames"`
}

type packerFile struct {
	Frames   json.RawMessage `json:"frames"`
	Textures []packerPage    `json:"textures"`
	Meta     packerMeta      `json:"meta"`
}

// ParseAtlas reads TexturePacker JSON in hash, array or multiatlas form.
// pageImage overrides the page path of single-page atlases when non-empty.
func ParseAtlas(data []byte, pageImage string) (*Atlas, error) {
	var f packerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}

	a := &Atlas{Frames: map[string]AtlasFrame{}}

	if len(f.Textures) > 0 {
		for _, p := range f.Textures {
			if p.Image == "" {
				return nil, fmt.Errorf("decode atlas: texture page without image")
			}
			if err := a.addFrames(p.Frames, p.Image); err != nil {
				return nil, err
			}
		}
		return a, nil
	}

	page := pageImage
	if page == "" {
		page = f.Meta.Image
	}
	if page == "" {
		return nil, fmt.Errorf("decode atlas: no page image")
	}
	if err := a.addFrames(f.Frames, page); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Atlas) addFrames(raw json.RawMessage, page string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fmt.Errorf("decode atlas: page %q has no frames", page)
	}

	var frames []packerFrame
	switch raw[0] {
	case '{':
		var hash map[string]packerFrame
		if err := json.Unmarshal(raw, &hash); err != nil {
			return fmt.Errorf("decode atlas frames: %w", err)
		}
		for name, fr := range hash {
			fr.Filename = name
			frames = append(frames, fr)
		}
	case '[':
		if err := json.Unmarshal(raw, &frames); err != nil {
			return fmt.Errorf("decode atlas frames: %w", err)
		}
	default:
		return fmt.Errorf("decode atlas: unexpected frames value")
	}

	a.Pages = append(a.Pages, page)
	for _, fr := range frames {
		if fr.Rotated {
			return fmt.Errorf("decode atlas: frame %q is rotated", fr.Filename)
		}
		if _, dup := a.Frames[fr.Filename]; dup {
			return fmt.Errorf("decode atlas: duplicate frame %q", fr.Filename)
		}
		r := fr.Frame
		a.Frames[fr.Filename] = AtlasFrame{
			Name: fr.Filename,
			Page: page,
			Rect: image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H),
		}
	}
	return nil
}
