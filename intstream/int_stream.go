package intstream

// Signed streams wrap the unsigned codec with the zigzag bijection, which
// maps integers of small magnitude to small unsigned values so the
// width-adaptive coding stays effective near zero.

// ZigzagEncode maps a signed value to an unsigned one:
// 0,-1,1,-2,2,... become 0,1,2,3,4,...
func ZigzagEncode(value int32) uint32 {
	if value >= 0 {
		return 2 * uint32(value)
	}
	return 2*uint32(-int64(value)) - 1
}

// ZigzagDecode inverts ZigzagEncode
func ZigzagDecode(value uint32) int32 {
	if value%2 == 0 {
		return int32(value / 2)
	}
	return -int32(value/2) - 1
}

// IntEncoder codes signed 32-bit integers. It has the same lifecycle as
// UintEncoder: at least one Write, then exactly one Flush, then Code.
type IntEncoder struct {
	uints *UintEncoder
}

// NewIntEncoder creates an encoder for a single stream of signed values
func NewIntEncoder() *IntEncoder {
	return &IntEncoder{uints: NewUintEncoder()}
}

// Write buffers one signed value for encoding
func (e *IntEncoder) Write(value int32) {
	e.uints.Write(ZigzagEncode(value))
}

// Flush serializes all pending values and finalizes the stream
func (e *IntEncoder) Flush() {
	e.uints.Flush()
}

// Code returns the encoded bytes. Only valid after Flush.
func (e *IntEncoder) Code() []byte {
	return e.uints.Code()
}

// IntDecoder decodes a stream produced by IntEncoder
type IntDecoder struct {
	uints *UintDecoder
}

// NewIntDecoder creates a decoder reading from code, which must contain at
// least one byte
func NewIntDecoder(code []byte) (*IntDecoder, error) {
	uints, err := NewUintDecoder(code)
	if err != nil {
		return nil, err
	}
	return &IntDecoder{uints: uints}, nil
}

// Read decodes and returns the next signed value
func (d *IntDecoder) Read() (int32, error) {
	value, err := d.uints.Read()
	if err != nil {
		return 0, err
	}
	return ZigzagDecode(value), nil
}

// NextCode returns the offset one past the last byte this stream consumed
func (d *IntDecoder) NextCode() int {
	return d.uints.NextCode()
}
