package components

import (
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

// AudioData queues fire-and-forget sound cues for the audio system to
// drain once per tick (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
