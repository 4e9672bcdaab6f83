package sound

import (
	"math"
	"math/rand/v2"
)

// DefaultSampleRate is used when no sample rate is configured.
const DefaultSampleRate = 44100

// Pop envelope: quick upward chirp that fades out.
const (
	popStartHz   = 600.0
	popEndHz     = 800.0
	popSweepSecs = 0.10
	popGain      = 0.15
	popSecs      = 0.15
)

// Whoosh envelope: bandpassed noise sweeping down.
const (
	whooshStartHz = 2000.0
	whooshEndHz   = 500.0
	whooshQ       = 1.0
	whooshGain    = 0.08
	whooshSecs    = 0.15
)

// Chime envelope: C5, E5, G5 in quick succession.
const (
	chimeGain     = 0.12
	chimeStepSecs = 0.12
	chimeAttack   = 0.05
	chimeNoteSecs = 0.4
)

var chimeNotes = []float64{523, 659, 784}

// silenceGain is the level exponential decays ramp down to.
const silenceGain = 0.001

// Synthesize renders t as mono samples in [-1, 1]. A nil rng uses the
// global source.
func Synthesize(t Tone, sampleRate int, rng *rand.Rand) []float64 {
	switch t {
	case TonePop:
		return Pop(sampleRate)
	case ToneWhoosh:
		return Whoosh(sampleRate, rng)
	case ToneChime:
		return Chime(sampleRate)
	default:
		return nil
	}
}

// Pop renders the selection tone.
func Pop(sampleRate int) []float64 {
	n := samplesFor(popSecs, sampleRate)
	out := make([]float64, n)
	var phase float64
	for i := range out {
		t := float64(i) / float64(sampleRate)
		freq := expRamp(popStartHz, popEndHz, 0, popSweepSecs, t)
		gain := expRamp(popGain, silenceGain, 0, popSecs, t)
		out[i] = math.Sin(phase) * gain
		phase += 2 * math.Pi * freq / float64(sampleRate)
	}
	return out
}

// Whoosh renders the transition tone.
func Whoosh(sampleRate int, rng *rand.Rand) []float64 {
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}

	n := samplesFor(whooshSecs, sampleRate)
	out := make([]float64, n)
	var filter biquad
	for i := range out {
		t := float64(i) / float64(sampleRate)
		noise := (next()*2 - 1) * (1 - float64(i)/float64(n))

		filter.setBandpass(expRamp(whooshStartHz, whooshEndHz, 0, whooshSecs, t), whooshQ, sampleRate)
		gain := expRamp(whooshGain, silenceGain, 0, whooshSecs, t)
		out[i] = filter.process(noise) * gain
	}
	return out
}

// Chime renders the completion tone. Notes overlap and are summed.
func Chime(sampleRate int) []float64 {
	total := float64(len(chimeNotes)-1)*chimeStepSecs + chimeNoteSecs
	out := make([]float64, samplesFor(total, sampleRate))

	for k, freq := range chimeNotes {
		start := samplesFor(float64(k)*chimeStepSecs, sampleRate)
		length := samplesFor(chimeNoteSecs, sampleRate)
		for i := 0; i < length && start+i < len(out); i++ {
			t := float64(i) / float64(sampleRate)
			out[start+i] += math.Sin(2*math.Pi*freq*t) * chimeEnvelope(t)
		}
	}
	return out
}

// chimeEnvelope is a linear attack to chimeGain then exponential decay.
func chimeEnvelope(t float64) float64 {
	if t < chimeAttack {
		return chimeGain * t / chimeAttack
	}
	return expRamp(chimeGain, silenceGain, chimeAttack, chimeNoteSecs, t)
}

// expRamp returns the value at t of an exponential ramp from v0 at t0 to
// v1 at t1, holding v0 before and v1 after. v0 and v1 must be positive.
func expRamp(v0, v1, t0, t1, t float64) float64 {
	switch {
	case t <= t0:
		return v0
	case t >= t1:
		return v1
	}
	return v0 * math.Pow(v1/v0, (t-t0)/(t1-t0))
}

func samplesFor(secs float64, sampleRate int) int {
	return int(math.Round(secs * float64(sampleRate)))
}
