package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Decay fades a streamer with an exponential envelope.
type Decay struct {
	s    beep.Streamer
	sr   beep.SampleRate
	rate float64
	pos  int
}

// NewDecay wraps s; rate is the envelope falloff per second.
func NewDecay(sr beep.SampleRate, s beep.Streamer, rate float64) *Decay {
	return &Decay{s: s, sr: sr, rate: rate}
}

func (d *Decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := range samples[:n] {
		env := math.Exp(-float64(d.pos) / float64(d.sr) * d.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *Decay) Err() error { return d.s.Err() }

// BlastGenerator is noise plus rumble with a fast attack and slow decay.
type BlastGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewBlastGenerator(sr beep.SampleRate, seed int64) *BlastGenerator {
	return &BlastGenerator{sr: sr, seed: seed}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.45*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error { return nil }

// BeatGenerator is a kick on every beat over a walking bass, 100 BPM.
type BeatGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

var bassLine = [4]float64{110, 110, 131, 98}

func NewBeatGenerator(sr beep.SampleRate) *BeatGenerator {
	return &BeatGenerator{sr: sr, beat: sr.N(600 * time.Millisecond)}
}

func (g *BeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.beat / 6
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		freq := bassLine[(g.pos/g.beat)%len(bassLine)]
		bass := 0.12 * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *BeatGenerator) Err() error { return nil }
