package systems

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi/ecs"
)

// EmitterAction tells the player system what to do with the dust emitter.
type EmitterAction int

const (
	EmitterKeep EmitterAction = iota
	EmitterStart
	EmitterStop
)

// MovementInput is everything the movement state machine reads in a frame.
type MovementInput struct {
	Left, Right bool
	JumpPressed bool // up went down this frame
	Grounded    bool

	// Display size of the player sprite, used for the dust anchor
	DisplayW, DisplayH float64
}

// MovementOutput is what the movement state machine asks of the player body,
// its sprite and the dust emitter.
type MovementOutput struct {
	State cfg.MoveState

	AccelX float64
	DragX  float64
	StopX  bool // zero the horizontal velocity
	Jump   bool // set the vertical velocity to the jump velocity

	SetFlip bool
	FlipX   bool

	Animation cfg.StateID

	Emitter        EmitterAction
	Follow         bool
	FollowOffX     float64
	FollowOffY     float64
	ParticleSpeedX float64
}

// DecideMovement runs one frame of the player's movement state machine.
// Left wins when both directions are held.
func DecideMovement(in MovementInput) MovementOutput {
	p := cfg.Player
	out := MovementOutput{Emitter: EmitterKeep}

	switch {
	case in.Left:
		out.State = cfg.MoveLeft
		out.AccelX = -p.Acceleration
		out.SetFlip, out.FlipX = true, false
		out.Animation = cfg.Walk
		out.Follow = true
		out.FollowOffX = in.DisplayW/2 - p.DustOffsetInset
		out.FollowOffY = in.DisplayH/2 - p.DustOffsetDrop
		out.ParticleSpeedX = p.ParticleVelocity
		if in.Grounded {
			out.Emitter = EmitterStart
		}
	case in.Right:
		out.State = cfg.MoveRight
		out.AccelX = p.Acceleration
		out.SetFlip, out.FlipX = true, true
		out.Animation = cfg.Walk
		out.Follow = true
		out.FollowOffX = in.DisplayW/2 + p.DustOffsetInset
		out.FollowOffY = in.DisplayH/2 - p.DustOffsetDrop
		out.ParticleSpeedX = -p.ParticleVelocity
		if in.Grounded {
			out.Emitter = EmitterStart
		}
	default:
		out.State = cfg.MoveIdle
		out.AccelX = 0
		out.Emitter = EmitterStop
		if in.Grounded {
			out.StopX = true
			out.Animation = cfg.Idle
		}
	}

	if in.Grounded {
		out.DragX = p.Drag
	} else {
		out.State = cfg.MoveAirborne
		out.DragX = p.AirDrag
		out.Animation = cfg.Jump
	}

	if in.Grounded && in.JumpPressed {
		out.Jump = true
	}
	return out
}

// NewUpdatePlayer drives the player body from input through DecideMovement.
func NewUpdatePlayer(sc *SceneContext) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if sc.Player == nil || !sc.Player.Valid() {
			return
		}
		input := getOrCreateInput(e)
		physics := components.Physics.Get(sc.Player)
		obj := components.Object.Get(sc.Player)

		out := DecideMovement(MovementInput{
			Left:        GetAction(input, cfg.ActionMoveLeft).Pressed,
			Right:       GetAction(input, cfg.ActionMoveRight).Pressed,
			JumpPressed: GetAction(input, cfg.ActionJump).JustPressed,
			Grounded:    physics.BlockedDown,
			DisplayW:    obj.W,
			DisplayH:    obj.H,
		})
		applyMovement(sc, out)
	}
}

func applyMovement(sc *SceneContext, out MovementOutput) {
	physics := components.Physics.Get(sc.Player)
	player := components.Player.Get(sc.Player)

	player.MoveState = out.State
	physics.AccelX = out.AccelX
	physics.DragX = out.DragX
	if out.StopX {
		physics.VelX = 0
	}
	if out.Jump {
		physics.VelY = cfg.Player.JumpVelocity
	}
	if out.SetFlip {
		player.FlipX = out.FlipX
	}
	if out.Animation != cfg.StateNone {
		anim := components.Animation.Get(sc.Player)
		anim.SetAnimation(out.Animation)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	}

	if sc.Emitter == nil || !sc.Emitter.Valid() || !sc.Features.WalkingVFX {
		return
	}
	emitter := components.Emitter.Get(sc.Emitter)
	if out.Follow {
		emitter.StartFollow(sc.Player, out.FollowOffX, out.FollowOffY)
		emitter.SetParticleSpeed(out.ParticleSpeedX, 0)
	}
	switch out.Emitter {
	case EmitterStart:
		emitter.Start()
	case EmitterStop:
		emitter.Stop()
	}
}

// NewUpdateSceneKeys handles the restart and collider debug keys.
func NewUpdateSceneKeys(sc *SceneContext) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionRestart).JustPressed {
			sc.RequestRestart("restart key")
		}
		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings := GetOrCreateSettings(e)
			settings.Debug = !settings.Debug
		}
	}
}
