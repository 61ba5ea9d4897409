package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/assets"
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/systems/factory"
)

// testWorld assembles a minimal playfield: the singletons, one ground
// platform spanning the left half, and the player standing over it. No
// systems are registered; tests drive the update functions directly.
type testWorld struct {
	ecs    *ecs.ECS
	space  *resolv.Space
	player *donburi.Entry
	ground *donburi.Entry
}

func newTestWorld() *testWorld {
	e := ecs.NewECS(donburi.NewWorld())

	space := factory.CreateSpace(e)
	factory.CreateSession(e, "test")
	factory.CreateParticles(e)
	factory.CreateParallax(e)
	factory.CreateOverlay(e)

	ground := factory.CreatePlatform(e, space, assets.PlatformDef{
		X: 0, Y: 440, W: 600, H: 16, Kind: cfg.PlatformNormal,
	})
	player := factory.CreatePlayer(e, space, cfg.Player.SpawnX, cfg.Player.SpawnY)

	return &testWorld{ecs: e, space: space, player: player, ground: ground}
}

func (tw *testWorld) playerData() *components.PlayerData {
	return components.Player.Get(tw.player)
}

func (tw *testWorld) playerPhysics() *components.PhysicsData {
	return components.Physics.Get(tw.player)
}

func (tw *testWorld) playerState() *components.StateData {
	return components.State.Get(tw.player)
}

func (tw *testWorld) playerObject() *resolv.Object {
	return components.Object.Get(tw.player).Object
}

// setInput advances the input latch one frame with exactly the given
// actions held, so edge detection (JustPressed/JustReleased) behaves as
// it would from real polling.
func (tw *testWorld) setInput(actions ...cfg.ActionID) {
	input := getOrCreateInput(tw.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

// tick runs one player update with the given held actions.
func (tw *testWorld) tick(actions ...cfg.ActionID) {
	tw.setInput(actions...)
	UpdatePlayer(tw.ecs)
}

// settle lands the player on the ground platform.
func (tw *testWorld) settle() {
	for i := 0; i < 30; i++ {
		tw.tick()
	}
}
