package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/midway/internal/core"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const (
	shotDuration      = 70 * time.Millisecond
	explosionDuration = 380 * time.Millisecond
	powerUpNote       = 90 * time.Millisecond
	gameOverNote      = 260 * time.Millisecond
)

// oscillator produces a fixed-length tone whose pitch slides linearly from
// freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a constant-pitch tone of the given length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep returns a tone gliding from one pitch to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope scales a stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies attack/release shaping over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. Zero or less is silence; Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ShotSound is a short descending square chirp.
func ShotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 700, shotDuration, WaveSquare, rate)
	return NewEnvelope(osc, shotDuration, 2*time.Millisecond, 40*time.Millisecond, rate)
}

// ExplosionSound mixes decaying noise with a low rumble.
func ExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, explosionDuration, WaveNoise, rate),
		explosionDuration, 5*time.Millisecond, 300*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(110, 40, explosionDuration, WaveSine, rate),
		explosionDuration, 5*time.Millisecond, 250*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
}

// PowerUpSound is a rising three-note arpeggio.
func PowerUpSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{659.25, 830.61, 987.77} // E5 G#5 B5
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, powerUpNote, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, powerUpNote, 3*time.Millisecond, 40*time.Millisecond, rate))
	}
	return beep.Seq(seq...)
}

// GameOverSound is a slow falling saw phrase.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{392.00, 311.13, 261.63} // G4 Eb4 C4
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, gameOverNote, WaveSaw, rate)
		seq = append(seq, NewEnvelope(osc, gameOverNote, 10*time.Millisecond, 120*time.Millisecond, rate))
	}
	return beep.Seq(seq...)
}

// Effect returns the streamer for a cue at the configured volume, or nil for
// an unknown cue.
func Effect(c core.Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case core.CueShot:
		s = ShotSound(rate)
	case core.CueExplosion:
		s = ExplosionSound(rate)
	case core.CuePowerUp:
		s = PowerUpSound(rate)
	case core.CueGameOver:
		s = GameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.volume(c))
}
