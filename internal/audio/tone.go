// internal/audio/tone.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave - форма волны генератора.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone - короткий звук с линейным переходом частоты from -> to
// и затуханием громкости к концу.
type tone struct {
	wave     Wave
	from, to float64
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	noise    uint32
}

// NewTone создаёт конечный генератор. После duration Stream возвращает ok=false.
func NewTone(wave Wave, from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:  wave,
		from:  from,
		to:    to,
		rate:  rate,
		total: rate.N(duration),
		noise: 0x9e3779b9,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		val := t.sample() * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	case WaveNoise:
		// xorshift32
		t.noise ^= t.noise << 13
		t.noise ^= t.noise >> 17
		t.noise ^= t.noise << 5
		return float64(t.noise)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) Err() error { return nil }

// drone - бесконечная фоновая мелодия: бас по кругу из четырёх нот.
type drone struct {
	rate  beep.SampleRate
	notes []float64
	step  int
	pos   int
	phase float64
}

// NewDrone создаёт бесконечный генератор фоновой музыки.
func NewDrone(rate beep.SampleRate, notes ...float64) beep.Streamer {
	if len(notes) == 0 {
		notes = []float64{110, 130.81, 98, 82.41}
	}
	return &drone{rate: rate, notes: notes, step: rate.N(600 * time.Millisecond)}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := d.notes[(d.pos/d.step)%len(d.notes)]
		inStep := float64(d.pos%d.step) / float64(d.step)
		env := 0.6 + 0.4*(1-inStep)
		val := 0.25 * env * math.Sin(2*math.Pi*d.phase)

		samples[i][0] = val
		samples[i][1] = val

		d.phase += note / float64(d.rate)
		d.phase -= math.Floor(d.phase)
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
