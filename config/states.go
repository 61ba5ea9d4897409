package config

// StateID identifies a movement/behavior state for players and enemies.
type StateID int

const (
	StateNone StateID = iota

	// Player movement states
	Idle
	Running
	Jumping
	Dashing
	Damage

	// Enemy behavior states (Idle and Damage are shared)
	Walk
	Attack
)

// PlatformKind identifies a platform behavior.
type PlatformKind int

const (
	PlatformNormal PlatformKind = iota
	PlatformCrumbling
	PlatformMoving
)

// TokenKind identifies a collectible token flavor.
type TokenKind int

const (
	TokenCurrency TokenKind = iota
	TokenGem
)

// EnemyKind identifies an enemy behavior archetype.
type EnemyKind int

const (
	EnemyShuffler EnemyKind = iota
	EnemyKraken
	EnemyZombie
)

// PowerupKind identifies a power-up flavor.
type PowerupKind int

const (
	PowerupThemeBooster PowerupKind = iota
	PowerupCheckoutDash
	PowerupAppMagnet
)

// ParticleKind identifies a particle visual style.
type ParticleKind int

const (
	ParticleSpark ParticleKind = iota
	ParticleDust
	ParticleExplosion
)
