package intstream

import "fmt"

// BitReader consumes bits from a caller-owned byte span in the same order
// BitWriter produced them: least-significant bit of each byte first. The
// span is never copied; the caller must keep it alive while reading.
type BitReader struct {
	code         []byte
	nextByte     int
	fillRegister uint64
	numFillBits  uint32
}

// NewBitReader creates a BitReader over `code`. The span may be longer than
// one encoded stream; see NextCode for chaining.
func NewBitReader(code []byte) *BitReader {
	return &BitReader{code: code}
}

// Read consumes the next `count` bits and returns them in the low bits of
// the result. count must be in [0, 32]. Fails with ErrShortRead if fewer
// than `count` bits remain; no bits are returned for a failed read.
func (r *BitReader) Read(count uint32) (uint32, error) {
	if count > 32 {
		panic(fmt.Sprintf("intstream: BitReader.Read count %d out of range", count))
	}
	for r.numFillBits < count {
		if r.nextByte >= len(r.code) {
			return 0, ErrShortRead
		}
		r.fillRegister |= uint64(r.code[r.nextByte]) << r.numFillBits
		r.nextByte++
		r.numFillBits += 8
	}
	bits := uint32(r.fillRegister & ((uint64(1) << count) - 1))
	r.fillRegister >>= count
	r.numFillBits -= count
	return bits, nil
}

// NextCode returns the offset one past the last byte any consumed bit came
// from. Streams are byte-aligned by BitWriter.Flush, so after reading a
// whole stream this is where a chained stream begins.
func (r *BitReader) NextCode() int {
	return r.nextByte - int(r.numFillBits)/8
}
