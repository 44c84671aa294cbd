package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq     float64
	phase    float64
	wave     WaveType
	rate     beep.SampleRate
	position int
	total    int
	attack   int
	release  int
	noise    *rand.Rand
}

type ToneOptions struct {
	Freq     float64
	Wave     WaveType
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// NewTone creates a streamer that plays a single shaped note and then drains.
func NewTone(rate beep.SampleRate, opts ToneOptions) beep.Streamer {
	return &tone{
		freq:    opts.Freq,
		wave:    opts.Wave,
		rate:    rate,
		total:   rate.N(opts.Duration),
		attack:  rate.N(opts.Attack),
		release: rate.N(opts.Release),
		noise:   rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = t.noise.Float64()*2 - 1
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.position < t.attack {
		return float64(t.position) / float64(t.attack)
	}
	if remaining := t.total - t.position; t.release > 0 && remaining < t.release {
		return float64(remaining) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Whistle is the referee's short double blast played on a shot.
func Whistle(rate beep.SampleRate) beep.Streamer {
	blast := func(d time.Duration) beep.Streamer {
		return NewTone(rate, ToneOptions{Freq: 2100, Wave: WaveSine, Duration: d, Attack: 5 * time.Millisecond, Release: 20 * time.Millisecond})
	}
	return withVolume(beep.Seq(blast(90*time.Millisecond), beep.Silence(rate.N(40*time.Millisecond)), blast(160*time.Millisecond)), 0.3)
}

// Cheer is a rising arpeggio with crowd noise underneath, played on a goal.
func Cheer(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewTone(rate, ToneOptions{Freq: freq, Wave: WaveSquare, Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond})
	}
	arpeggio := beep.Seq(note(523.25), note(659.25), note(783.99), note(1046.5))
	crowd := NewTone(rate, ToneOptions{Wave: WaveNoise, Duration: 700 * time.Millisecond, Attack: 150 * time.Millisecond, Release: 300 * time.Millisecond})
	return beep.Mix(withVolume(arpeggio, 0.15), withVolume(crowd, 0.08))
}

// Thud is the keeper's save.
func Thud(rate beep.SampleRate) beep.Streamer {
	return withVolume(NewTone(rate, ToneOptions{Freq: 90, Wave: WaveSine, Duration: 180 * time.Millisecond, Release: 150 * time.Millisecond}), 0.5)
}

// Groan is a falling pair of notes played on a miss.
func Groan(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewTone(rate, ToneOptions{Freq: freq, Wave: WaveSine, Duration: 220 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 80 * time.Millisecond})
	}
	return withVolume(beep.Seq(note(330), note(247)), 0.3)
}
