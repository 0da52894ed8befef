package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
)

// The effect generators are infinite streamers; callers bound them with
// beep.Take. All of them stay comfortably inside [-1, 1].

// NoiseBurst is white noise with an exponential decay envelope, the body of
// the gunshot crack.
type NoiseBurst struct {
	sr   beep.SampleRate
	pos  int
	gain float64
}

func NewNoiseBurst(sr beep.SampleRate, gain float64) *NoiseBurst {
	return &NoiseBurst{sr: sr, gain: gain}
}

func (n *NoiseBurst) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(n.pos) / float64(n.sr)
		env := math.Exp(-t * 28)
		v := (rand.Float64()*2 - 1) * env * n.gain
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *NoiseBurst) Err() error { return nil }

// Click is a sharp damped sine, used for the dry-fire and slide-rack sounds.
type Click struct {
	sr   beep.SampleRate
	pos  int
	freq float64
}

func NewClick(sr beep.SampleRate, freq float64) *Click {
	return &Click{sr: sr, freq: freq}
}

func (c *Click) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)
		env := math.Exp(-t * 90)
		v := math.Sin(2*math.Pi*c.freq*t) * env * 0.6
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *Click) Err() error { return nil }

// Thud is a low sine with a slower decay, the ghost hit confirmation.
type Thud struct {
	sr   beep.SampleRate
	pos  int
	freq float64
}

func NewThud(sr beep.SampleRate, freq float64) *Thud {
	return &Thud{sr: sr, freq: freq}
}

func (t *Thud) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		ts := float64(t.pos) / float64(t.sr)
		env := math.Exp(-ts * 18)
		v := math.Sin(2*math.Pi*t.freq*ts) * env * 0.7
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Thud) Err() error { return nil }

// Buzz is a square-ish growl for player damage.
type Buzz struct {
	sr   beep.SampleRate
	pos  int
	freq float64
}

func NewBuzz(sr beep.SampleRate, freq float64) *Buzz {
	return &Buzz{sr: sr, freq: freq}
}

func (b *Buzz) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		s := math.Sin(2 * math.Pi * b.freq * t)
		v := math.Tanh(s*4) * 0.4
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Buzz) Err() error { return nil }

// Sweep glides linearly between two frequencies over its first 400ms, the
// wave announcement horn.
type Sweep struct {
	sr       beep.SampleRate
	pos      int
	from, to float64
}

func NewSweep(sr beep.SampleRate, from, to float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to}
}

func (s *Sweep) Stream(samples [][2]float64) (int, bool) {
	const sweepSeconds = 0.4
	for i := range samples {
		t := float64(s.pos) / float64(s.sr)
		frac := t / sweepSeconds
		if frac > 1 {
			frac = 1
		}
		freq := s.from + (s.to-s.from)*frac
		env := 1.0
		if frac > 0.75 {
			env = (1 - frac) / 0.25
		}
		v := math.Sin(2*math.Pi*freq*t) * env * 0.5
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error { return nil }
