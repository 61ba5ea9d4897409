package components

import "github.com/yohamta/donburi"

// SessionData is the singleton run state. It is read by nearly every
// system; score and shake are side channels written by several of them
// within a tick (later shake writes overwrite earlier ones).
type SessionData struct {
	Score  int
	Tokens int

	// Elapsed run time in seconds, accumulated in fixed 1/60 increments.
	Elapsed float64

	Paused   bool
	GameOver bool
	Victory  bool

	Level string

	// Screen shake: magnitude in pixels, frames remaining, frames elapsed.
	ShakeMagnitude float64
	ShakeFrames    int
	ShakeElapsed   int

	MusicEnabled bool
	SoundEnabled bool
}

var Session = donburi.NewComponentType[SessionData]()
