package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDash
	SoundToken
	SoundPowerup
	SoundDefeat
	SoundDamage
	SoundVictory
	SoundMenuSelect
)

// Waveform identifies an oscillator shape for synthesized cues.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ToneConfig describes one synthesized sound effect. Frequency sweeps
// linearly from FreqStart to FreqEnd over the duration.
type ToneConfig struct {
	Wave      Waveform
	FreqStart float64
	FreqEnd   float64
	Seconds   float64
	Attack    float64
	Release   float64
	Volume    float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicTempoBPM   float64
	MusicVolume     float64
}

var Audio AudioConfig

// Tones maps sound IDs to their synthesis parameters.
var Tones map[SoundID]ToneConfig

// MelodyNotes is the looping background melody as semitone offsets from
// A4 (440 Hz); a rest is marked with restNote.
const RestNote = -128

var MelodyNotes = []int{0, 4, 7, 12, 7, 4, 0, RestNote, -2, 2, 5, 9, 5, 2, -2, RestNote}

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
		MusicTempoBPM:   180,
		MusicVolume:     0.18,
	}

	Tones = map[SoundID]ToneConfig{
		SoundJump: {
			Wave: WaveSquare, FreqStart: 220, FreqEnd: 520,
			Seconds: 0.12, Attack: 0.005, Release: 0.06, Volume: 0.35,
		},
		SoundDash: {
			Wave: WaveNoise, FreqStart: 0, FreqEnd: 0,
			Seconds: 0.15, Attack: 0.005, Release: 0.12, Volume: 0.3,
		},
		SoundToken: {
			Wave: WaveSquare, FreqStart: 880, FreqEnd: 1320,
			Seconds: 0.09, Attack: 0.002, Release: 0.05, Volume: 0.3,
		},
		SoundPowerup: {
			Wave: WaveSine, FreqStart: 440, FreqEnd: 1100,
			Seconds: 0.25, Attack: 0.01, Release: 0.1, Volume: 0.35,
		},
		SoundDefeat: {
			Wave: WaveSaw, FreqStart: 300, FreqEnd: 80,
			Seconds: 0.2, Attack: 0.002, Release: 0.12, Volume: 0.4,
		},
		SoundDamage: {
			Wave: WaveSaw, FreqStart: 160, FreqEnd: 60,
			Seconds: 0.25, Attack: 0.002, Release: 0.15, Volume: 0.45,
		},
		SoundVictory: {
			Wave: WaveSine, FreqStart: 523, FreqEnd: 1046,
			Seconds: 0.6, Attack: 0.01, Release: 0.3, Volume: 0.4,
		},
		SoundMenuSelect: {
			Wave: WaveSquare, FreqStart: 660, FreqEnd: 660,
			Seconds: 0.06, Attack: 0.002, Release: 0.03, Volume: 0.25,
		},
	}
}
