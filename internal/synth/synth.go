// Package synth builds the stand-in sounds used when audio files are missing.
// Everything is rendered up front to 16-bit little-endian stereo PCM.
package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

// Shot is a short square blip.
func Shot() ([]byte, error) {
	sq, err := generators.SquareTone(SampleRate, 950)
	if err != nil {
		return nil, fmt.Errorf("shot tone: %w", err)
	}
	s := beep.Take(SampleRate.N(70*time.Millisecond), &effects.Gain{Streamer: sq, Gain: -0.8})
	return Render(NewDecay(SampleRate, s, 30)), nil
}

// Reload is a two-note click-clack.
func Reload() ([]byte, error) {
	lo, err := generators.SineTone(SampleRate, 330)
	if err != nil {
		return nil, fmt.Errorf("reload tone: %w", err)
	}
	hi, err := generators.SineTone(SampleRate, 660)
	if err != nil {
		return nil, fmt.Errorf("reload tone: %w", err)
	}
	note := SampleRate.N(60 * time.Millisecond)
	s := beep.Seq(
		beep.Take(note, &effects.Gain{Streamer: lo, Gain: -0.6}),
		beep.Silence(SampleRate.N(40*time.Millisecond)),
		beep.Take(note, &effects.Gain{Streamer: hi, Gain: -0.6}),
	)
	return Render(s), nil
}

// Blast is a decaying noise burst over a low rumble.
func Blast() ([]byte, error) {
	return Render(beep.Take(SampleRate.N(400*time.Millisecond), NewBlastGenerator(SampleRate, 1))), nil
}

// Loop is one bar of background beat, meant to be played on repeat.
func Loop() ([]byte, error) {
	return Render(beep.Take(SampleRate.N(2400*time.Millisecond), NewBeatGenerator(SampleRate))), nil
}

// Render drains s into PCM bytes, clipping to [-1, 1].
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
