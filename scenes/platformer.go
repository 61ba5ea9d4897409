package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/assets"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/systems"
	"github.com/pixeldrift/cartdash/systems/factory"
	"github.com/pixeldrift/cartdash/ui"
)

// PlatformerScene runs a single level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	pauseMenu    *ui.PauseMenu
	once         sync.Once
}

// NewPlatformerScene creates the gameplay scene for the default level.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.MustFindSession(ps.ecs).Paused {
		ps.pauseMenu.UI.Update()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.MustFindSession(ps.ecs).Paused {
		ps.pauseMenu.UI.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Gameplay systems, halted while paused or terminal. Order matters:
	// the player resolves first, enemies read the player state computed
	// this tick, particles advance last.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParallax))

	// Session detects terminal conditions and handles retry; audio drains
	// the cue queue; overlay fades in over the frozen playfield; objects
	// sync the collision space for next tick.
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateOverlay)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateObjects)

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawParallax)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawOverlay)

	ps.ecs = e

	level, err := assets.LoadLevel(assets.FS, assets.DefaultLevel)
	if err != nil {
		log.Fatalf("load level: %v", err)
	}

	space := factory.CreateSpace(e)
	factory.CreateSession(e, level.Name)
	factory.CreateParticles(e)
	factory.CreateParallax(e)
	factory.CreateOverlay(e)
	factory.PopulateLevel(e, space, level)

	session := systems.MustFindSession(e)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		session.MusicEnabled = saved.MusicEnabled
		session.SoundEnabled = saved.SoundEnabled
	}

	ps.pauseMenu = ui.NewPauseMenu(session,
		func() { // resume
			session.Paused = false
			systems.ResumeMusic(e)
		},
		func() { // retry
			systems.ResetRun(e)
			systems.ResumeMusic(e)
		},
		func(enabled bool) { systems.SetMusicEnabled(e, enabled) },
		func(enabled bool) { systems.SetSoundEnabled(e, enabled) },
	)

	systems.StartMusic(e)
}
