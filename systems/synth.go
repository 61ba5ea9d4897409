package systems

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/pixeldrift/cartdash/config"
)

// All cues are synthesized at startup; no audio files ship with the game.

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples, sweeping linearly from
// freqStart to freqEnd over the buffer.
func oscillator(wave cfg.Waveform, freqStart, freqEnd float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	rate := float64(cfg.Audio.SampleRate)

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := freqStart + (freqEnd-freqStart)*t

		switch wave {
		case cfg.WaveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case cfg.WaveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case cfg.WaveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case cfg.WaveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += freq / rate
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(cfg.Audio.SampleRate))
	releaseSamples := int(releaseSec * float64(cfg.Audio.SampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes
func floatToBytes(buf floatBuffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, sample := range buf {
		v := sample * gain
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		i16 := int16(v * 32767)
		idx := i * 4
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))   // L
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16)) // R
	}
	return out
}

func durationToSamples(d float64) int {
	return int(d * float64(cfg.Audio.SampleRate))
}

// renderTone synthesizes one sound effect as playable PCM.
func renderTone(tone cfg.ToneConfig) []byte {
	samples := durationToSamples(tone.Seconds)
	buf := oscillator(tone.Wave, tone.FreqStart, tone.FreqEnd, samples)
	applyEnvelope(buf, tone.Attack, tone.Release)
	return floatToBytes(buf, tone.Volume)
}

// renderMelody synthesizes one pass of the background melody. The player
// wraps it in an infinite loop.
func renderMelody() []byte {
	noteSeconds := 60.0 / cfg.Audio.MusicTempoBPM
	noteSamples := durationToSamples(noteSeconds)

	full := make(floatBuffer, 0, noteSamples*len(cfg.MelodyNotes))
	for _, semitone := range cfg.MelodyNotes {
		if semitone == cfg.RestNote {
			full = append(full, make(floatBuffer, noteSamples)...)
			continue
		}
		freq := 440.0 * math.Pow(2, float64(semitone)/12.0)
		note := oscillator(cfg.WaveSquare, freq, freq, noteSamples)
		applyEnvelope(note, 0.01, 0.08)
		full = append(full, note...)
	}
	return floatToBytes(full, cfg.Audio.MusicVolume)
}
