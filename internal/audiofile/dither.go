package audiofile

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Dither adds TPDF noise of one LSB at bitDepth to both channels, to be
// applied right before WriteWAV quantizes.
func Dither(s *Stereo, bitDepth int, seed int64) error {
	if bitDepth != 16 && bitDepth != 24 {
		return ErrUnsupportedBitDepth
	}

	lsb := math.Ldexp(1, -(bitDepth - 1))
	state := vecmath.NewDitherState(seed)
	vecmath.AddDitherTPDF(s.Left, lsb, state)
	vecmath.AddDitherTPDF(s.Right, lsb, state)
	return nil
}
