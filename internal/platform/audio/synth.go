package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// sweep is a tone gliding linearly from one frequency to another.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	length   int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, length: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress

		// Square wave with a linear fade out
		val := 1.0
		if s.phase >= 0.5 {
			val = -1.0
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// burst is decaying noise over a low rumble.
type burst struct {
	pos    int
	length int
	seed   uint32
	rate   beep.SampleRate
}

func newBurst(d time.Duration, rate beep.SampleRate) *burst {
	return &burst{length: rate.N(d), seed: 0x2545f491, rate: rate}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.length {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		envelope := math.Exp(-t * 9)

		b.seed ^= b.seed << 13
		b.seed ^= b.seed >> 17
		b.seed ^= b.seed << 5
		noise := float64(b.seed)/float64(math.MaxUint32)*2 - 1
		rumble := math.Sin(2 * math.Pi * 55 * t)

		val := envelope * (0.7*noise + 0.3*rumble)
		samples[i][0] = val
		samples[i][1] = val
		b.pos++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }

// musicNotes is the bass line of the background loop, in Hz.
var musicNotes = []float64{55, 55, 65.41, 55, 73.42, 55, 65.41, 49}

// music is an endless pulsing bass line.
type music struct {
	pos      int
	noteLen  int
	phase    float64
	rate     beep.SampleRate
	notes    []float64
	gapRatio float64
}

func newMusic(rate beep.SampleRate) *music {
	return &music{
		noteLen:  rate.N(280 * time.Millisecond),
		rate:     rate,
		notes:    musicNotes,
		gapRatio: 0.7,
	}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (m.pos / m.noteLen) % len(m.notes)
		inNote := float64(m.pos%m.noteLen) / float64(m.noteLen)

		val := 0.0
		if inNote < m.gapRatio {
			// Triangle wave, decaying through the note
			val = (1 - 4*math.Abs(m.phase-0.5)) * (1 - inNote/m.gapRatio)
		}
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.notes[note] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }

// withVolume scales a stream by a linear gain. Zero gain is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// shootSound is a short falling chirp.
func shootSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(1400, 300, 120*time.Millisecond, rate)
}

// explodeSound is a burst of noise.
func explodeSound(rate beep.SampleRate) beep.Streamer {
	return newBurst(450*time.Millisecond, rate)
}
