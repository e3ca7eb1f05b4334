package intstream

// Convenience entry points for whole-sequence encoding and decoding. The
// streaming types remain the primary API; these cover the common case of a
// sequence that is already in memory.

// EncodeUint32s encodes a sequence of unsigned values in one call.
// The sequence must not be empty.
func EncodeUint32s(values []uint32) []byte {
	encoder := NewUintEncoder()
	for _, v := range values {
		encoder.Write(v)
	}
	encoder.Flush()
	return encoder.Code()
}

// DecodeUint32s decodes exactly n unsigned values from code. The code span
// may contain further chained streams after this one; use a UintDecoder
// directly if the chaining offset is needed.
func DecodeUint32s(code []byte, n int) ([]uint32, error) {
	decoder, err := NewUintDecoder(code)
	if err != nil {
		return nil, err
	}
	values := make([]uint32, n)
	for i := range values {
		values[i], err = decoder.Read()
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// EncodeInt32s encodes a sequence of signed values in one call.
// The sequence must not be empty.
func EncodeInt32s(values []int32) []byte {
	encoder := NewIntEncoder()
	for _, v := range values {
		encoder.Write(v)
	}
	encoder.Flush()
	return encoder.Code()
}

// DecodeInt32s decodes exactly n signed values from code
func DecodeInt32s(code []byte, n int) ([]int32, error) {
	decoder, err := NewIntDecoder(code)
	if err != nil {
		return nil, err
	}
	values := make([]int32, n)
	for i := range values {
		values[i], err = decoder.Read()
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// EncodeVerifyInt32s encodes values and then decodes the result, returning
// an error instead of the code if the round trip does not reproduce the
// input exactly.
func EncodeVerifyInt32s(values []int32) ([]byte, error) {
	code := EncodeInt32s(values)
	decoded, err := DecodeInt32s(code, len(values))
	if err != nil {
		return nil, err
	}
	for i := range values {
		if decoded[i] != values[i] {
			return nil, NewStreamError(ErrorCodeVerificationMismatch,
				"round trip did not reproduce the input")
		}
	}
	return code, nil
}
