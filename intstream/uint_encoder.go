// Package intstream packs sequences of 32-bit integers into compact
// bitstreams. The coding is lossless and adaptive: it works best when the
// magnitudes of successive values are correlated, as they are for audio
// prediction residuals.
package intstream

const (
	// flushThreshold is the pending-buffer size that triggers a partial
	// flush, and flushChunk is how many samples each partial flush commits.
	// Widths are computed over the whole buffer so the 32 uncommitted
	// samples still inform the smoothing of the 32 being committed; any
	// value further ahead could only raise a committed width by
	// bitWidth - 32 <= 0, so partial flushes are byte-identical to
	// encoding in one pass.
	flushThreshold = 64
	flushChunk     = 32
)

// UintEncoder codes a sequence of 32-bit unsigned integers into a compact
// bitstream. It is efficient when the magnitudes of successive values are
// correlated: instead of a fixed field per value it transmits how each
// sample's bit-width changes relative to its neighbors, the minimum bits
// for the value at that width, and run-length codes for stretches of zeros.
//
// Usage: call Write at least once, then Flush exactly once, then Code.
// Misuse of that lifecycle panics; an encoder never returns errors because
// its inputs cannot be invalid. Not safe for concurrent use.
type UintEncoder struct {
	bits   *BitWriter
	buffer []uint32
	widths []int

	// mostRecentWidth is the smoothed width of the sample immediately
	// before buffer[0], or 0 if nothing has been committed yet.
	mostRecentWidth int
	pendingZeros    uint32
	started         bool
	flushed         bool
}

// NewUintEncoder creates an encoder for a single stream
func NewUintEncoder() *UintEncoder {
	return &UintEncoder{
		bits:   NewBitWriter(64),
		buffer: make([]uint32, 0, flushThreshold),
		widths: make([]int, 0, flushThreshold+1),
	}
}

// Write buffers one value for encoding. Must be called at least once
// before Flush; an empty stream cannot be encoded.
func (e *UintEncoder) Write(value uint32) {
	if e.flushed {
		panic("intstream: UintEncoder.Write called after Flush")
	}
	e.buffer = append(e.buffer, value)
	if len(e.buffer) >= flushThreshold {
		e.flushSome(flushChunk)
	}
}

// Flush serializes all pending values and finalizes the stream. Must be
// called exactly once, after at least one Write.
func (e *UintEncoder) Flush() {
	if e.flushed {
		panic("intstream: UintEncoder.Flush called twice")
	}
	if len(e.buffer) == 0 {
		panic("intstream: UintEncoder.Flush called before Write")
	}
	e.flushed = true
	e.flushSome(len(e.buffer))
	if e.pendingZeros > 0 {
		// the stream ends inside a run of zeros
		e.flushPendingZeros()
	}
	e.bits.Flush()
}

// Code returns the encoded bytes. Only valid after Flush.
func (e *UintEncoder) Code() []byte {
	if !e.flushed {
		panic("intstream: UintEncoder.Code called before Flush")
	}
	return e.bits.Code()
}

// flushSome serializes the oldest numToFlush pending values. Widths are
// computed over the entire pending buffer so samples beyond numToFlush
// still constrain the ones being committed.
func (e *UintEncoder) flushSome(numToFlush int) {
	size := len(e.buffer)
	e.widths = e.widths[:size+1]
	computeWidthProfile(e.buffer, e.mostRecentWidth, e.widths[:size])
	if numToFlush == size {
		// End of stream: the width after the last sample carries no
		// constraint of its own, so the sentinel repeats the last width.
		e.widths[size] = e.widths[size-1]
	}

	if !e.started {
		e.writeHeader(e.widths[0])
		e.started = true
		// Treat the stream start as if a sample of this width preceded
		// it; this only affects the top-bit-redundant condition.
		e.mostRecentWidth = e.widths[0]
	}

	prevWidth := e.mostRecentWidth
	curWidth := e.widths[0]
	for i := 0; i < numToFlush; i++ {
		nextWidth := e.widths[i+1]
		e.writeSample(prevWidth, curWidth, nextWidth, e.buffer[i])
		prevWidth, curWidth = curWidth, nextWidth
	}

	e.mostRecentWidth = e.widths[numToFlush-1]
	n := copy(e.buffer, e.buffer[numToFlush:])
	e.buffer = e.buffer[:n]
}

// writeHeader writes the initial width. 5 bits cover widths 0..30; 31 and
// 32 share the 5-bit value 31 and are distinguished by one extra bit,
// since spending 6 bits on every stream for the sake of two rare widths
// would be wasteful.
func (e *UintEncoder) writeHeader(firstWidth int) {
	if firstWidth >= 31 {
		e.bits.Write(5, 31)
		e.bits.Write(1, uint32(firstWidth-31))
	} else {
		e.bits.Write(5, uint32(firstWidth))
	}
}

// writeSample emits the code for one value. The transition code for the
// *next* sample's width is written before this sample's value bits: the
// decoder needs the next width to evaluate the top-bit-redundant condition
// while reading the value.
func (e *UintEncoder) writeSample(prevWidth, curWidth, nextWidth int, value uint32) {
	if curWidth == 0 {
		// The value is provably 0; it costs no bits of its own and the
		// run it belongs to is coded when the run ends (or at Flush).
		e.pendingZeros++
		return
	}
	if e.pendingZeros > 0 {
		e.flushPendingZeros()
	}

	count, bits := transitionCode(nextWidth - curWidth)
	e.bits.Write(count, bits)

	if topBitRedundant(prevWidth, curWidth, nextWidth) {
		// The top bit is known to be set; clear it and drop it from the
		// wire (BitWriter requires bits above the count to be zero).
		e.bits.Write(uint32(curWidth-1), value^(1<<uint(curWidth-1)))
	} else {
		e.bits.Write(uint32(curWidth), value)
	}
}

// flushPendingZeros emits the run-length code for an accumulated run of
// width-0 samples. For a run of n (>= 1), with k = bitWidth(n)-1: k zero
// bits, a delimiting one bit, then the low k bits of n. The implicit top
// bit of n is never transmitted, and the leading 1 makes the prefix
// self-delimiting on decode.
func (e *UintEncoder) flushPendingZeros() {
	k := uint(bitWidth(e.pendingZeros) - 1)
	e.bits.Write(uint32(k+1), 1<<k)
	e.bits.Write(uint32(k), e.pendingZeros&((1<<k)-1))
	e.pendingZeros = 0
}
