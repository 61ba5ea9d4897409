package systems

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalMusicPlayer  *audio.Player
	globalSFXCache     map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context and renders every
// cue into the cache (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFXCache = make(map[cfg.SoundID][]byte, len(cfg.Tones))
		for id, tone := range cfg.Tones {
			globalSFXCache[id] = renderTone(tone)
		}
	})
}

// UpdateAudio drains pending SFX queued by the gameplay systems. Runs
// unwrapped so cues fired on the terminal tick still play.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	session := MustFindSession(e)

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	if session.SoundEnabled {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	pcm, ok := globalSFXCache[soundID]
	if !ok {
		return
	}
	player := audio.NewPlayerFromBytes(globalAudioContext, pcm)
	player.Play()
}

// StartMusic synthesizes the melody loop and starts it. Safe to call
// again; an already-running loop keeps playing.
func StartMusic(e *ecs.ECS) {
	initGlobalAudio()

	if globalMusicPlayer != nil {
		if MustFindSession(e).MusicEnabled {
			globalMusicPlayer.Play()
		}
		return
	}

	pcm := renderMelody()
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		return
	}
	globalMusicPlayer = player
	if MustFindSession(e).MusicEnabled {
		player.Play()
	}
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil && MustFindSession(e).MusicEnabled {
		globalMusicPlayer.Play()
	}
}

// SetMusicEnabled flips the music toggle and persists it.
func SetMusicEnabled(e *ecs.ECS, enabled bool) {
	session := MustFindSession(e)
	session.MusicEnabled = enabled
	if globalMusicPlayer != nil {
		if enabled {
			globalMusicPlayer.Play()
		} else {
			globalMusicPlayer.Pause()
		}
	}
	SaveSettings(session)
}

// SetSoundEnabled flips the SFX toggle and persists it.
func SetSoundEnabled(e *ecs.ECS, enabled bool) {
	session := MustFindSession(e)
	session.SoundEnabled = enabled
	SaveSettings(session)
}

// PlaySFX queues a sound effect to be played. Gameplay systems only queue;
// the audio system owns playback, so this never touches the device.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
