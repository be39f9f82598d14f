package config

// StateID names an animation sequence of a character
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	}
	return "none"
}

// MoveState is the player's movement state for the current frame
type MoveState int

const (
	MoveIdle MoveState = iota
	MoveLeft
	MoveRight
	MoveAirborne
)

func (m MoveState) String() string {
	switch m {
	case MoveLeft:
		return "MovingLeft"
	case MoveRight:
		return "MovingRight"
	case MoveAirborne:
		return "Airborne"
	}
	return "Idle"
}
