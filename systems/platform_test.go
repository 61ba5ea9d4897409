package systems

import (
	"testing"

	"github.com/pixeldrift/cartdash/assets"
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/systems/factory"
)

func TestMovingPlatformStaysInPatrolBounds(t *testing.T) {
	tw := newTestWorld()

	entry := factory.CreatePlatform(tw.ecs, tw.space, assets.PlatformDef{
		X: 480, Y: 300, W: 96, H: 16,
		Kind: cfg.PlatformMoving, Speed: 1.4, Range: 160,
	})
	platform := components.Platform.Get(entry)
	obj := components.Object.Get(entry).Object

	reversals := 0
	prevDir := platform.Direction
	for i := 0; i < 2000; i++ {
		AdvanceMovingPlatform(platform, obj)
		if obj.X < platform.OriginX || obj.X > platform.OriginX+platform.Range {
			t.Fatalf("tick %d: X = %v outside [%v, %v]", i, obj.X, platform.OriginX, platform.OriginX+platform.Range)
		}
		if platform.Direction != prevDir {
			reversals++
			prevDir = platform.Direction
		}
	}
	if reversals < 2 {
		t.Errorf("platform reversed %d times over 2000 ticks, want at least 2", reversals)
	}
}

func TestAdvanceIgnoresStaticPlatforms(t *testing.T) {
	tw := newTestWorld()

	platform := components.Platform.Get(tw.ground)
	obj := components.Object.Get(tw.ground).Object
	before := obj.X

	AdvanceMovingPlatform(platform, obj)
	if obj.X != before {
		t.Errorf("static platform moved from %v to %v", before, obj.X)
	}
}

func TestCrumblingPlatformOnlyFlickers(t *testing.T) {
	tw := newTestWorld()

	entry := factory.CreatePlatform(tw.ecs, tw.space, assets.PlatformDef{
		X: 300, Y: 360, W: 64, H: 16, Kind: cfg.PlatformCrumbling,
	})
	platform := components.Platform.Get(entry)
	obj := components.Object.Get(entry).Object
	x, y := obj.X, obj.Y

	for i := 0; i < 300; i++ {
		UpdatePlatforms(tw.ecs)
	}

	if platform.CrumbleTick != 300 {
		t.Errorf("CrumbleTick = %d, want 300", platform.CrumbleTick)
	}
	// Crumbling platforms never collapse or move
	if obj.X != x || obj.Y != y {
		t.Errorf("crumbling platform moved to (%v,%v)", obj.X, obj.Y)
	}
}
