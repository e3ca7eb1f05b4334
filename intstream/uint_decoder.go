package intstream

import "fmt"

// UintDecoder decodes a stream produced by UintEncoder. It reconstructs
// the encoder's width profile one sample at a time from the transition
// codes alone; there is no side channel and no end-of-stream marker, so
// the caller must know how many values to read. Not safe for concurrent
// use.
type UintDecoder struct {
	bits *BitReader

	// prevWidth and curWidth track the widths of the most recently read
	// sample and of the one about to be read, mirroring the encoder.
	prevWidth int
	curWidth  int

	// zeroRunLength counts down the remaining samples of a decoded run of
	// zeros; -1 means no run is being tracked. It deliberately passes
	// through -1 when a run ends, which is what closes the run.
	zeroRunLength int
}

// NewUintDecoder creates a decoder reading from code, which must contain at
// least one byte. The span may extend past the end of this stream (see
// NextCode); the decoder reads from it directly and never copies it.
func NewUintDecoder(code []byte) (*UintDecoder, error) {
	if len(code) == 0 {
		return nil, ErrEmptyCode
	}
	d := &UintDecoder{
		bits:          NewBitReader(code),
		zeroRunLength: -1,
	}
	width, err := d.bits.Read(5)
	if err != nil {
		return nil, err
	}
	initial := int(width)
	if initial >= 31 {
		// the initial width ranges over 0..32; 31 and 32 share the 5-bit
		// header value and one extra bit tells them apart
		extra, err := d.bits.Read(1)
		if err != nil {
			return nil, err
		}
		initial += int(extra)
	}
	d.prevWidth = initial
	d.curWidth = initial
	return d, nil
}

// Read decodes and returns the next value. A failure means the code bytes
// are truncated or corrupted; the decoder is not usable afterwards.
func (d *UintDecoder) Read() (uint32, error) {
	prevWidth := d.prevWidth
	curWidth := d.curWidth

	var nextWidth int
	if curWidth != 0 {
		var err error
		nextWidth, err = d.readTransition(curWidth)
		if err != nil {
			return 0, err
		}
	} else if d.zeroRunLength >= 0 {
		// Inside a run whose length is already known. The run closes by
		// decrementing through -1.
		if d.zeroRunLength == 0 {
			nextWidth = 1
		} else {
			nextWidth = 0
		}
		d.zeroRunLength--
	} else {
		// Just arrived at width 0: the stream continues with a run-length
		// code telling us how many zeros follow in total.
		runLength, err := d.readZeroRunLength()
		if err != nil {
			return 0, err
		}
		// Minus 2: the current sample is the run's first zero, and
		// nextWidth accounts for the second. A run of 1 leaves -1 here,
		// which is the intended "no run" state.
		d.zeroRunLength = runLength - 2
		if runLength == 1 {
			nextWidth = 1
		} else {
			nextWidth = 0
		}
	}

	var value uint32
	if topBitRedundant(prevWidth, curWidth, nextWidth) {
		bits, err := d.bits.Read(uint32(curWidth - 1))
		if err != nil {
			return 0, err
		}
		value = bits | 1<<uint(curWidth-1)
	} else {
		bits, err := d.bits.Read(uint32(curWidth))
		if err != nil {
			return 0, err
		}
		value = bits
	}

	d.prevWidth = curWidth
	d.curWidth = nextWidth
	return value, nil
}

// NextCode returns the offset one past the last byte this stream consumed,
// for chaining another stream packed directly after it in the same buffer.
func (d *UintDecoder) NextCode() int {
	return d.bits.NextCode()
}

// readTransition decodes the width of the next sample relative to the
// current one: 0 keeps the width, 1,1 steps up, 1,0 steps down.
func (d *UintDecoder) readTransition(curWidth int) (int, error) {
	bit, err := d.bits.Read(1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return curWidth, nil
	}
	bit, err = d.bits.Read(1)
	if err != nil {
		return 0, err
	}
	if bit != 0 {
		if curWidth+1 > maxWidth {
			return 0, NewStreamError(ErrorCodeWidthOutOfRange,
				fmt.Sprintf("width transition above %d", maxWidth))
		}
		return curWidth + 1, nil
	}
	if curWidth-1 < 0 {
		return 0, NewStreamError(ErrorCodeWidthOutOfRange, "width transition below 0")
	}
	return curWidth - 1, nil
}

// readZeroRunLength decodes the run-length code written by
// flushPendingZeros: k zero bits and a one bit, then k bits x, giving a
// run of 2^k + x zeros.
func (d *UintDecoder) readZeroRunLength() (int, error) {
	k := 0
	for {
		bit, err := d.bits.Read(1)
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			break
		}
		k++
		if k > 31 {
			return 0, NewStreamError(ErrorCodeRunLengthOverflow,
				"zero-run prefix longer than 31 bits")
		}
	}
	x, err := d.bits.Read(uint32(k))
	if err != nil {
		return 0, err
	}
	return 1<<uint(k) + int(x), nil
}
