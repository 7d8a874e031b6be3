package hgt2png

import (
	"fmt"
)

// Rescale maps every sample onto the unsigned 16-bit range in place:
// the observed minimum encodes to 0, the maximum to 65534, and the Void
// sentinel to the reserved 0xFFFF. Fractional results truncate toward
// zero. The buffer transitions from StageSigned to StageEncoded.
//
// A range with no valid samples is rejected with ErrDegenerateRange.
// A flat raster (min == max) encodes every valid sample to 0 with a
// stored delta of 0, so the decode function still recovers min.
func (r *Raster) Rescale(rng Range) error {
	if err := r.requireStage(StageSigned); err != nil {
		return err
	}
	if !rng.HasSamples() {
		return fmt.Errorf("%w: no valid samples observed (%d voids)", ErrDegenerateRange, rng.Voids)
	}

	minf := float64(rng.Min)
	deltaf := float64(rng.Delta())
	n := r.Samples()
	for i := 0; i < n; i++ {
		v := r.sample(i)
		var enc uint16
		switch {
		case v == Void:
			enc = VoidEncoded
		case deltaf == 0:
			enc = 0
		default:
			enc = uint16((float64(v) - minf) * EncodedMax / deltaf)
		}
		r.putEncoded(i, enc)
	}

	r.stage = StageEncoded
	return nil
}

// DecodeElevation recovers the physical elevation for an encoded pixel
// value using the stored (min, delta) pair, exactly as a pCAL-aware
// reader would. The second return is false for the no-data value.
func DecodeElevation(encoded uint16, rng Range) (float64, bool) {
	if encoded == VoidEncoded {
		return 0, false
	}
	return float64(rng.Min) + float64(encoded)*float64(rng.Delta())/EncodedMax, true
}
