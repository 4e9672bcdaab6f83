package sound

import "math"

// biquad is a second-order IIR filter in direct form I.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

// setBandpass sets constant 0 dB peak gain bandpass coefficients centred
// on freq (RBJ audio EQ cookbook). State is kept so the centre frequency
// can sweep while filtering.
func (f *biquad) setBandpass(freq, q float64, sampleRate int) {
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha

	f.b0 = alpha / a0
	f.b1 = 0
	f.b2 = -alpha / a0
	f.a1 = -2 * math.Cos(w0) / a0
	f.a2 = (1 - alpha) / a0
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
