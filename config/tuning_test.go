package config

import "testing"

func TestOverrideTuning(t *testing.T) {
	origMax := Player.MaxSpeed
	origGravity := Physics.Gravity
	origBonus := Enemy.DefeatBonus
	defer func() {
		Player.MaxSpeed = origMax
		Physics.Gravity = origGravity
		Enemy.DefeatBonus = origBonus
	}()

	raw := []byte(`
player:
  maxSpeed: 7.5
physics:
  gravity: 0.9
enemies:
  defeatBonus: 250
`)
	overrideTuning(raw)

	if Player.MaxSpeed != 7.5 {
		t.Errorf("MaxSpeed = %v, want 7.5", Player.MaxSpeed)
	}
	if Physics.Gravity != 0.9 {
		t.Errorf("Gravity = %v, want 0.9", Physics.Gravity)
	}
	if Enemy.DefeatBonus != 250 {
		t.Errorf("DefeatBonus = %v, want 250", Enemy.DefeatBonus)
	}
}

func TestOverrideTuningOmittedKeysKeepDefaults(t *testing.T) {
	origImpulse := Player.JumpImpulse
	origMax := Player.MaxSpeed
	defer func() {
		Player.JumpImpulse = origImpulse
		Player.MaxSpeed = origMax
	}()

	overrideTuning([]byte("player:\n  maxSpeed: 6.0\n"))

	if Player.JumpImpulse != origImpulse {
		t.Errorf("JumpImpulse changed to %v, want untouched %v", Player.JumpImpulse, origImpulse)
	}
	if Player.MaxSpeed != 6.0 {
		t.Errorf("MaxSpeed = %v, want 6.0", Player.MaxSpeed)
	}
}

func TestOverrideTuningBadYAMLKeepsDefaults(t *testing.T) {
	origMax := Player.MaxSpeed
	overrideTuning([]byte("player: [not a map"))
	if Player.MaxSpeed != origMax {
		t.Errorf("MaxSpeed = %v, want untouched %v", Player.MaxSpeed, origMax)
	}
}
