package sound

import (
	"encoding/binary"
	"math"
)

// EncodePCM16 scales samples by volume and encodes them as signed 16-bit
// little-endian mono PCM. Values outside [-1, 1] are clamped.
func EncodePCM16(samples []float64, volume float64) []byte {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		v := math.Max(-1, math.Min(1, s*volume))
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(math.Round(v*math.MaxInt16))))
	}
	return buf
}
