package config

import (
	_ "embed"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var tuningYAML []byte

// tuningFile mirrors the embedded tuning.yaml. Pointer fields distinguish
// "absent" from zero so the file only needs to list the values it changes.
type tuningFile struct {
	Player struct {
		MaxSpeed           *float64 `yaml:"maxSpeed"`
		Acceleration       *float64 `yaml:"acceleration"`
		JumpImpulse        *float64 `yaml:"jumpImpulse"`
		DashSpeed          *float64 `yaml:"dashSpeed"`
		DashCooldownFrames *int     `yaml:"dashCooldownFrames"`
		CoyoteFrames       *int     `yaml:"coyoteFrames"`
		JumpBufferFrames   *int     `yaml:"jumpBufferFrames"`
	} `yaml:"player"`
	Physics struct {
		Gravity      *float64 `yaml:"gravity"`
		MaxFallSpeed *float64 `yaml:"maxFallSpeed"`
	} `yaml:"physics"`
	Particles struct {
		MaxLive *int `yaml:"maxLive"`
	} `yaml:"particles"`
	Enemies struct {
		DefeatBonus *int `yaml:"defeatBonus"`
	} `yaml:"enemies"`
}

// applyTuning overlays tuning.yaml onto the defaults set in init().
// A broken tuning file is a warning, not a fatal error.
func applyTuning() {
	overrideTuning(tuningYAML)
}

func overrideTuning(raw []byte) {
	if len(raw) == 0 {
		return
	}

	var t tuningFile
	if err := yaml.Unmarshal(raw, &t); err != nil {
		log.Printf("Warning: could not parse tuning overrides: %v", err)
		return
	}

	if v := t.Player.MaxSpeed; v != nil {
		Player.MaxSpeed = *v
	}
	if v := t.Player.Acceleration; v != nil {
		Player.Acceleration = *v
	}
	if v := t.Player.JumpImpulse; v != nil {
		Player.JumpImpulse = *v
	}
	if v := t.Player.DashSpeed; v != nil {
		Player.DashSpeed = *v
	}
	if v := t.Player.DashCooldownFrames; v != nil {
		Player.DashCooldownFrames = *v
	}
	if v := t.Player.CoyoteFrames; v != nil {
		Player.CoyoteFrames = *v
	}
	if v := t.Player.JumpBufferFrames; v != nil {
		Player.JumpBufferFrames = *v
	}
	if v := t.Physics.Gravity; v != nil {
		Physics.Gravity = *v
	}
	if v := t.Physics.MaxFallSpeed; v != nil {
		Physics.MaxFallSpeed = *v
	}
	if v := t.Particles.MaxLive; v != nil {
		Particle.MaxLive = *v
	}
	if v := t.Enemies.DefeatBonus; v != nil {
		Enemy.DefeatBonus = *v
	}
}
