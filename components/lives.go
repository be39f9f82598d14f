package components

import "github.com/yohamta/donburi"

// LivesData never drops below zero and never rises within one scene.
type LivesData struct {
	Lives    int
	MaxLives int
}

// Lose takes one life away and returns what is left.
func (l *LivesData) Lose() int {
	if l.Lives > 0 {
		l.Lives--
	}
	return l.Lives
}

var Lives = donburi.NewComponentType[LivesData]()
