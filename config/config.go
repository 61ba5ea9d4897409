package config

import "image/color"

// Config contains the logical playfield dimensions.
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64
	Friction     float64 // velocity multiplier applied when no direction is held
	MaxSpeed     float64
	StopEpsilon  float64 // below this speed a grounded player snaps to rest

	// Jumping
	JumpImpulse      float64
	JumpCutThreshold float64 // rising faster than this when jump releases halves vy
	CoyoteFrames     int
	JumpBufferFrames int

	// Dash
	DashSpeed          float64
	DashCooldownFrames int

	// Damage
	Health           int
	InvulnFrames     int
	KnockbackSpeed   float64
	DamagePoseFrames int

	// Spawn
	SpawnX float64
	SpawnY float64

	// Dimensions
	Width  float64
	Height float64
}

// PhysicsConfig contains global physics configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

// EnemyTypeConfig contains configuration for a specific enemy type
type EnemyTypeConfig struct {
	Name   string
	Health int
	Speed  float64
	Width  float64
	Height float64
	Color  color.RGBA

	// Shuffler glitch behavior
	GlitchChance float64 // per-tick probability of freezing in a damage pose
	GlitchFrames int

	// Zombie lurch behavior
	LurchChance float64 // per-tick probability of re-rolling horizontal speed

	// Kraken float behavior
	FloatAmplitude float64
	FloatRate      float64 // phase increment per tick
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[EnemyKind]EnemyTypeConfig
	DefeatBonus int
}

// TokenConfig contains collectible token configuration
type TokenConfig struct {
	CurrencyValue int
	GemValue      int
	Size          float64
}

// PowerupConfig contains power-up configuration
type PowerupConfig struct {
	ScoreBonus int
	Size       float64
	// Duration is stored on collected power-ups but never consumed; the
	// field exists for parity with the pickup data and timed buffs may
	// hang off it later.
	Duration int
}

// ParticleBurst describes one gameplay particle burst
type ParticleBurst struct {
	Count    int
	Life     int
	Speed    float64
	Size     float64
	Gravity  float64
	BaseTint color.RGBA
}

// ParticleConfig contains particle system configuration
type ParticleConfig struct {
	MaxLive int // hard cap, oldest-first eviction

	Spark     ParticleBurst
	Dust      ParticleBurst
	Explosion ParticleBurst
	Pickup    ParticleBurst
}

// GoalConfig describes the victory region
type GoalConfig struct {
	X, Y, W, H float64
	// Victory thresholds checked against the player's top-left corner.
	MinX float64
	MinY float64
}

// ScreenShakeConfig contains screen shake magnitudes per event
type ScreenShakeConfig struct {
	FallMagnitude     float64
	FallFrames        int
	DefeatMagnitude   float64
	DefeatFrames      int
	DamageMagnitude   float64
	DamageFrames      int
	OscillationRateX  float64
	OscillationRateY  float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin       float64
	PipSize      float64
	PipGap       float64
	MeterWidth   float64
	MeterHeight  float64
	TextColor    color.RGBA
	MeterBgColor color.RGBA
	MeterFgColor color.RGBA
}

// ParallaxLayerConfig describes one cosmetic background band
type ParallaxLayerConfig struct {
	Speed  float64
	Y      float64
	Height float64
	Color  color.RGBA
}

// ParallaxConfig contains background layer configuration
type ParallaxConfig struct {
	Layers []ParallaxLayerConfig
}

// OverlayConfig contains terminal-screen overlay configuration
type OverlayConfig struct {
	FadeTarget   float32 // final overlay alpha
	FadeSeconds  float32
	VictoryColor color.RGBA
	DefeatColor  color.RGBA
}

var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Token TokenConfig
var Powerup PowerupConfig
var Particle ParticleConfig
var Goal GoalConfig
var ScreenShake ScreenShakeConfig
var HUD HUDConfig
var Parallax ParallaxConfig
var Overlay OverlayConfig

// Common colors
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1200,
		Height: 600,
	}

	Physics = PhysicsConfig{
		Gravity:      0.6,
		MaxFallSpeed: 14.0,
	}

	Player = PlayerConfig{
		Acceleration: 0.5,
		Friction:     0.85,
		MaxSpeed:     5.0,
		StopEpsilon:  0.1,

		JumpImpulse:      -13.0,
		JumpCutThreshold: 2.0,
		CoyoteFrames:     6,
		JumpBufferFrames: 8,

		DashSpeed:          15.0,
		DashCooldownFrames: 60,

		Health:           3,
		InvulnFrames:     90,
		KnockbackSpeed:   8.0,
		DamagePoseFrames: 20,

		SpawnX: 100,
		SpawnY: 400,

		Width:  28,
		Height: 40,
	}

	Enemy = EnemyConfig{
		DefeatBonus: 100,
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyShuffler: {
				Name:         "shuffler",
				Health:       2,
				Speed:        1.5,
				Width:        32,
				Height:       32,
				Color:        color.RGBA{R: 200, G: 80, B: 80, A: 255},
				GlitchChance: 0.004,
				GlitchFrames: 45,
			},
			EnemyKraken: {
				Name:           "kraken",
				Health:         3,
				Speed:          0,
				Width:          40,
				Height:         36,
				Color:          color.RGBA{R: 120, G: 80, B: 200, A: 255},
				FloatAmplitude: 40.0,
				FloatRate:      0.05,
			},
			EnemyZombie: {
				Name:        "zombie",
				Health:      2,
				Speed:       0.8,
				Width:       30,
				Height:      38,
				Color:       color.RGBA{R: 90, G: 160, B: 90, A: 255},
				LurchChance: 0.01,
			},
		},
	}

	Token = TokenConfig{
		CurrencyValue: 10,
		GemValue:      50,
		Size:          16,
	}

	Powerup = PowerupConfig{
		ScoreBonus: 25,
		Size:       20,
		Duration:   300,
	}

	Particle = ParticleConfig{
		MaxLive: 400,
		Spark: ParticleBurst{
			Count: 8, Life: 20, Speed: 4.0, Size: 3, Gravity: 0.1,
			BaseTint: color.RGBA{R: 255, G: 230, B: 120, A: 255},
		},
		Dust: ParticleBurst{
			Count: 5, Life: 16, Speed: 1.5, Size: 2, Gravity: 0.05,
			BaseTint: color.RGBA{R: 180, G: 170, B: 150, A: 255},
		},
		Explosion: ParticleBurst{
			Count: 14, Life: 28, Speed: 5.0, Size: 4, Gravity: 0.15,
			BaseTint: color.RGBA{R: 255, G: 140, B: 60, A: 255},
		},
		Pickup: ParticleBurst{
			Count: 6, Life: 18, Speed: 2.5, Size: 2, Gravity: 0.05,
			BaseTint: color.RGBA{R: 120, G: 220, B: 255, A: 255},
		},
	}

	Goal = GoalConfig{
		X: 1150, Y: 500, W: 50, H: 50,
		MinX: 1150,
		MinY: 450,
	}

	ScreenShake = ScreenShakeConfig{
		FallMagnitude:    6.0,
		FallFrames:       20,
		DefeatMagnitude:  4.0,
		DefeatFrames:     12,
		DamageMagnitude:  8.0,
		DamageFrames:     24,
		OscillationRateX: 1.1,
		OscillationRateY: 1.3,
	}

	HUD = HUDConfig{
		Margin:       12,
		PipSize:      14,
		PipGap:       5,
		MeterWidth:   90,
		MeterHeight:  8,
		TextColor:    color.RGBA{R: 240, G: 240, B: 240, A: 255},
		MeterBgColor: color.RGBA{R: 40, G: 40, B: 50, A: 255},
		MeterFgColor: color.RGBA{R: 120, G: 200, B: 255, A: 255},
	}

	Parallax = ParallaxConfig{
		Layers: []ParallaxLayerConfig{
			{Speed: 0.1, Y: 380, Height: 220, Color: color.RGBA{R: 34, G: 38, B: 58, A: 255}},
			{Speed: 0.25, Y: 440, Height: 160, Color: color.RGBA{R: 46, G: 52, B: 76, A: 255}},
			{Speed: 0.5, Y: 500, Height: 100, Color: color.RGBA{R: 60, G: 68, B: 96, A: 255}},
		},
	}

	Overlay = OverlayConfig{
		FadeTarget:   0.7,
		FadeSeconds:  0.5,
		VictoryColor: color.RGBA{R: 20, G: 60, B: 30, A: 255},
		DefeatColor:  color.RGBA{R: 60, G: 20, B: 20, A: 255},
	}

	applyTuning()
}
