package intstream

import "math/bits"

// maxWidth is the largest representable bit-width (a full uint32).
const maxWidth = 32

// bitWidth returns the number of bits needed to represent v: the position
// of the highest set bit plus one, or 0 for v == 0.
func bitWidth(v uint32) int {
	return bits.Len32(v)
}

// computeWidthProfile fills widths[i] with the smallest bit-width for each
// element of window such that widths[i] >= bitWidth(window[i]) and adjacent
// widths differ by at most 1. prevWidth is the width of the sample
// immediately before the window (0 if no sample has been committed yet);
// it constrains the first element from the left. The right boundary is
// treated as width 0, which imposes no constraint; the end-of-stream
// sentinel is the caller's concern.
//
// Evaluating a long sequence in chunks with the carried prevWidth of each
// chunk produces the same widths as one evaluation over the whole sequence,
// provided each chunk's profile is computed over a window extending past
// the samples actually committed (the encoder's 64-wide window, 32-sample
// commit). widths must have len(window) elements.
func computeWidthProfile(window []uint32, prevWidth int, widths []int) {
	prev := prevWidth
	for i, v := range window {
		w := bitWidth(v)
		if prev-1 > w {
			w = prev - 1
		}
		widths[i] = w
		prev = w
	}

	next := 0
	for i := len(window) - 1; i >= 0; i-- {
		if next-1 > widths[i] {
			widths[i] = next - 1
		}
		next = widths[i]
	}
}
