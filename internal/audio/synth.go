package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is used for every cue.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Cue is a short sound tied to a battle event.
type Cue int

const (
	CueWin Cue = iota
	CueLose
	CueTie
	CueVictory
	CueDefeat
	CuePurchase
)

func (c Cue) String() string {
	switch c {
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	case CueTie:
		return "tie"
	case CueVictory:
		return "victory"
	case CueDefeat:
		return "defeat"
	case CuePurchase:
		return "purchase"
	}
	return "unknown"
}

const (
	noteDuration    = 90 * time.Millisecond
	tieDuration     = 60 * time.Millisecond
	loseDuration    = 180 * time.Millisecond
	defeatDuration  = 600 * time.Millisecond
	coinDuration    = 70 * time.Millisecond
	attackDuration  = 5 * time.Millisecond
	releaseDuration = 40 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attackDuration, releaseDuration, rate)
}

// Synth builds the streamer for a cue at the given linear volume.
func Synth(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueWin:
		// C5 then G5
		s = beep.Seq(note(523.25, noteDuration, WaveSine, rate), note(783.99, noteDuration, WaveSine, rate))
	case CueLose:
		s = beep.Seq(note(160, loseDuration/2, WaveSaw, rate), note(120, loseDuration/2, WaveSaw, rate))
	case CueTie:
		s = note(440, tieDuration, WaveSquare, rate)
	case CueVictory:
		// C5 E5 G5 C6 arpeggio
		s = beep.Seq(
			note(523.25, noteDuration, WaveSine, rate),
			note(659.25, noteDuration, WaveSine, rate),
			note(783.99, noteDuration, WaveSine, rate),
			note(1046.50, 2*noteDuration, WaveSine, rate),
		)
	case CueDefeat:
		s = NewEnvelope(NewOscillator(90, defeatDuration, WaveSaw, rate), defeatDuration, attackDuration, defeatDuration/2, rate)
	case CuePurchase:
		tone, err := generators.SineTone(rate, 1318.51)
		if err != nil {
			return nil
		}
		s = NewEnvelope(beep.Take(rate.N(coinDuration), tone), coinDuration, attackDuration, releaseDuration, rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}

// CueLength returns how many samples a cue lasts.
func CueLength(c Cue, rate beep.SampleRate) int {
	switch c {
	case CueWin:
		return 2 * rate.N(noteDuration)
	case CueLose:
		return 2 * rate.N(loseDuration/2)
	case CueTie:
		return rate.N(tieDuration)
	case CueVictory:
		return 3*rate.N(noteDuration) + rate.N(2*noteDuration)
	case CueDefeat:
		return rate.N(defeatDuration)
	case CuePurchase:
		return rate.N(coinDuration)
	}
	return 0
}
