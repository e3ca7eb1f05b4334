package intstream

// Per-sample wire alphabet shared by UintEncoder and UintDecoder. Keeping
// the pure pieces here makes the encode/decode symmetry checkable in
// isolation from the stream state machines.

// transitionCode returns the bit pattern and bit count that encode a width
// change of delta (next width minus current width, one of -1, 0, +1).
// Half the probability mass goes to "unchanged" (a single 0 bit), a quarter
// each to up ("1,1") and down ("1,0"), matching the expected smoothness of
// the width sequence.
func transitionCode(delta int) (count, bits uint32) {
	switch delta {
	case 1:
		return 2, 3
	case -1:
		return 2, 1
	case 0:
		return 1, 0
	}
	panic("intstream: width transition delta out of range")
}

// topBitRedundant reports whether a sample's most significant bit is
// provably 1 from context. When neither neighbor's width exceeds the
// current one, the smoothing in computeWidthProfile guarantees the current
// width equals the sample's own bit-width, so its top bit must be set and
// need not be transmitted.
func topBitRedundant(prevWidth, curWidth, nextWidth int) bool {
	return prevWidth <= curWidth && nextWidth <= curWidth && curWidth > 0
}
