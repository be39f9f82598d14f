package animations

// Animation steps through a list of named atlas frames.
type Animation struct {
	Frames       []string
	SpeedInTps   float32 // ticks per frame, 0 holds the first frame
	Loop         bool
	frameCounter float32
	frame        int
	Looped       bool
}

func (a *Animation) Update() {
	if len(a.Frames) < 2 || a.SpeedInTps <= 0 {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame++
		if a.frame >= len(a.Frames) {
			a.Looped = true
			if a.Loop {
				a.frame = 0
			} else {
				a.frame = len(a.Frames) - 1
			}
		}
	}
}

// Frame returns the current frame name.
func (a *Animation) Frame() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.frame]
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(frames []string, speed float32, loop bool) *Animation {
	return &Animation{
		Frames:       frames,
		SpeedInTps:   speed,
		Loop:         loop,
		frameCounter: speed,
	}
}
