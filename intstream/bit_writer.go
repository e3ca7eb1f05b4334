package intstream

import "fmt"

// BitWriter packs bits into a growing byte buffer. Bits are appended
// least-significant-first: the first bit written lands in the lowest bit of
// the first byte, and later bits fill each byte from low to high.
type BitWriter struct {
	code         []byte
	fillRegister uint64
	numFillBits  uint32
	flushed      bool
}

// NewBitWriter creates a new BitWriter with the given initial capacity in bytes
func NewBitWriter(initialCapacity int) *BitWriter {
	return &BitWriter{
		code: make([]byte, 0, initialCapacity),
	}
}

// Write appends the low `count` bits of `bits` to the stream. Bits at or
// above position `count` must be zero. count must be in [0, 32].
func (w *BitWriter) Write(count uint32, bits uint32) {
	if count > 32 {
		panic(fmt.Sprintf("intstream: BitWriter.Write count %d out of range", count))
	}
	if bits != 0 && count < 32 && bits>>count != 0 {
		panic(fmt.Sprintf("intstream: BitWriter.Write value %#x does not fit in %d bits", bits, count))
	}
	w.fillRegister |= uint64(bits) << w.numFillBits
	w.numFillBits += count

	// The register holds at most 32+31 bits here, so draining whole bytes
	// keeps the next Write from overflowing it.
	for w.numFillBits >= 8 {
		w.code = append(w.code, byte(w.fillRegister))
		w.fillRegister >>= 8
		w.numFillBits -= 8
	}
}

// Flush pads the in-progress byte with zero bits and finalizes the buffer.
// Must be called exactly once per stream.
func (w *BitWriter) Flush() {
	if w.flushed {
		panic("intstream: BitWriter.Flush called twice")
	}
	w.flushed = true
	if w.numFillBits > 0 {
		w.code = append(w.code, byte(w.fillRegister))
		w.fillRegister = 0
		w.numFillBits = 0
	}
}

// Code returns the finalized byte buffer. Only valid after Flush.
func (w *BitWriter) Code() []byte {
	if !w.flushed {
		panic("intstream: BitWriter.Code called before Flush")
	}
	return w.code
}

// BitCount returns the number of bits written so far. After Flush this
// includes the pad bits of the final byte.
func (w *BitWriter) BitCount() int {
	return len(w.code)*8 + int(w.numFillBits)
}
