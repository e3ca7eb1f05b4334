package intstream_test

import (
	"fmt"

	"github.com/arvhal/intstream_go/intstream"
)

func ExampleEncodeInt32s() {
	residuals := []int32{3, -2, 0, 0, 0, 1, 14, -13}

	code := intstream.EncodeInt32s(residuals)
	decoded, err := intstream.DecodeInt32s(code, len(residuals))
	if err != nil {
		panic(err)
	}

	fmt.Println(len(code), "bytes")
	fmt.Println(decoded)
	// Output:
	// 6 bytes
	// [3 -2 0 0 0 1 14 -13]
}

func ExampleUintDecoder_NextCode() {
	buffer := intstream.EncodeUint32s([]uint32{7, 8, 9})
	buffer = append(buffer, intstream.EncodeUint32s([]uint32{100})...)

	decoder, err := intstream.NewUintDecoder(buffer)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 3; i++ {
		v, err := decoder.Read()
		if err != nil {
			panic(err)
		}
		fmt.Print(v, " ")
	}

	chained, err := intstream.NewUintDecoder(buffer[decoder.NextCode():])
	if err != nil {
		panic(err)
	}
	v, err := chained.Read()
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output:
	// 7 8 9 100
}
