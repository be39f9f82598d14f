package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; renderer registration order decides depth.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64 `yaml:"acceleration"`
	Drag         float64 `yaml:"drag"`
	AirDrag      float64 `yaml:"air_drag"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MaxVelX      float64 `yaml:"max_vel_x"`

	// Walking dust speed, mirrored against the facing direction
	ParticleVelocity float64 `yaml:"particle_velocity"`

	// Lives
	StartingLives int `yaml:"starting_lives"`

	// Spawn is the sprite center, not the body corner
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`

	// Dimensions
	FrameWidth  int
	FrameHeight int

	// Emitter anchor relative to the body's top-left corner
	DustOffsetInset float64
	DustOffsetDrop  float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	StepSeconds  float64
	CellSize     int
}

// PlatformSpec describes one patrolling platform
type PlatformSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
}

// PlatformConfig contains moving platform configuration
type PlatformConfig struct {
	Spawns       []PlatformSpec `yaml:"spawns"`
	InitialSpeed float64        `yaml:"initial_speed"`
	PatrolSpeed  float64        `yaml:"patrol_speed"`
	Width        float64
	Height       float64
	SheetKey     string
	Frames       [3]int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowLerp float64 // 0.0-1.0, fraction of the remaining distance per frame
	DeadzoneW  float64
	DeadzoneH  float64
	Zoom       float64
}

// VFXConfig contains the walking dust emitter configuration
type VFXConfig struct {
	AtlasKey   string
	Frames     []string
	ScaleStart float64
	ScaleEnd   float64
	AlphaStart float64
	AlphaEnd   float64
	LifespanMs float64
	Frequency  float64 // ms between emissions, 0 = every frame
	Quantity   int
	MaxAlive   int
}

// HUDConfig contains the lives counter configuration
type HUDConfig struct {
	X, Y          float64
	FontSize      float64
	TextColor     color.RGBA
	PulseScale    float32
	PulseDuration float32 // seconds
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Hint            string
	ButtonSpacing   int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	DrawColliders bool // Start with collider outlines visible
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Platforms PlatformConfig
var Camera CameraConfig
var VFX VFXConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	SkyBlue   = color.RGBA{R: 150, G: 200, B: 240, A: 255}
	DarkGreen = color.RGBA{R: 20, G: 40, B: 20, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "coinhop",
	}

	Player = PlayerConfig{
		Acceleration:     200,
		Drag:             1000,
		AirDrag:          100,
		JumpVelocity:     -500,
		MaxVelX:          10000,
		ParticleVelocity: 50,
		StartingLives:    3,
		SpawnX:           90,
		SpawnY:           100,
		FrameWidth:       24,
		FrameHeight:      24,
		DustOffsetInset:  10,
		DustOffsetDrop:   5,
	}

	Physics = PhysicsConfig{
		Gravity:      1500,
		MaxFallSpeed: 10000,
		StepSeconds:  1.0 / 60.0,
		CellSize:     18,
	}

	Platforms = PlatformConfig{
		Spawns: []PlatformSpec{
			{X: 550, Y: 297, MinX: 440, MaxX: 550},
			{X: 800, Y: 297, MinX: 720, MaxX: 885},
			{X: 890, Y: 297, MinX: 890, MaxX: 1050},
		},
		InitialSpeed: 100,
		PatrolSpeed:  40,
		Width:        54,
		Height:       18,
		SheetKey:     "sprite_tiles",
		Frames:       [3]int{48, 49, 50},
	}

	Camera = CameraConfig{
		FollowLerp: 0.25,
		DeadzoneW:  50,
		DeadzoneH:  50,
		Zoom:       2.0,
	}

	VFX = VFXConfig{
		AtlasKey:   "kenny-particles",
		Frames:     []string{"smoke_03.png", "smoke_09.png"},
		ScaleStart: 0.03,
		ScaleEnd:   0.1,
		AlphaStart: 1,
		AlphaEnd:   0.1,
		LifespanMs: 350,
		Frequency:  0,
		Quantity:   1,
		MaxAlive:   64,
	}

	HUD = HUDConfig{
		X:             16,
		Y:             16,
		FontSize:      32,
		TextColor:     White,
		PulseScale:    1.5,
		PulseDuration: 0.3,
	}

	Menu = MenuConfig{
		BackgroundColor: SkyBlue,
		TitleColor:      White,
		TextColor:       White,
		Title:           "COINHOP",
		Hint:            "Arrows move, Up jumps, R restarts, D shows colliders",
		ButtonSpacing:   24,
	}
}
