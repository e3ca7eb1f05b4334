package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/arvhal/intstream_go/intstream"
)

type trialResult struct {
	rawBytes     int
	encodedBytes int
	ok           bool
	errMsg       string
}

func main() {
	count := flag.Int("n", 100000, "Samples per trial")
	trials := flag.Int("trials", 10, "Number of trials")
	seed := flag.Int64("seed", 1, "PRNG seed")
	maxBits := flag.Int("maxbits", 17, "Upper bound on sample magnitude in bits (1..31)")
	zeroRuns := flag.Bool("zeros", true, "Inject runs of zeros")
	signed := flag.Bool("signed", true, "Exercise the signed stream instead of the unsigned one")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1")
		os.Exit(2)
	}
	if *maxBits < 1 || *maxBits > 31 {
		fmt.Fprintln(os.Stderr, "Error: -maxbits must be in 1..31")
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))

	var totalRaw, totalEncoded int
	failures := 0
	for trial := 0; trial < *trials; trial++ {
		values := generate(rng, *count, *maxBits, *zeroRuns)

		var result trialResult
		if *signed {
			result = runSigned(values)
		} else {
			result = runUnsigned(values)
		}

		totalRaw += result.rawBytes
		totalEncoded += result.encodedBytes
		if !result.ok {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL trial %d: %s\n", trial, result.errMsg)
			continue
		}
		if *verbose {
			fmt.Printf("trial %d: %d samples, %d -> %d bytes (%.1f%%)\n",
				trial, *count, result.rawBytes, result.encodedBytes,
				100*float64(result.encodedBytes)/float64(result.rawBytes))
		}
	}

	fmt.Printf("\n=== Summary ===\n")
	fmt.Printf("Trials:    %d (%d failed)\n", *trials, failures)
	fmt.Printf("Raw:       %d bytes\n", totalRaw)
	fmt.Printf("Encoded:   %d bytes\n", totalEncoded)
	fmt.Printf("Ratio:     %.3f\n", float64(totalEncoded)/float64(totalRaw))

	if failures > 0 {
		os.Exit(1)
	}
}

// generate produces a sequence whose magnitudes wander like audio
// prediction residuals: a random walk over bit-widths with optional runs
// of exact zeros
func generate(rng *rand.Rand, n, maxBits int, zeroRuns bool) []int32 {
	values := make([]int32, n)
	width := rng.Intn(maxBits)
	for i := 0; i < n; {
		switch rng.Intn(4) {
		case 0:
			if width < maxBits {
				width++
			}
		case 1:
			if width > 0 {
				width--
			}
		}
		if width == 0 || (zeroRuns && rng.Intn(50) == 0) {
			for run := 1 + rng.Intn(40); run > 0 && i < n; run-- {
				values[i] = 0
				i++
			}
			width = 0
			continue
		}
		magnitude := int32(rng.Int63() & (1<<width - 1))
		if rng.Intn(2) == 0 {
			magnitude = -magnitude
		}
		values[i] = magnitude
		i++
	}
	return values
}

func runSigned(values []int32) trialResult {
	result := trialResult{rawBytes: 4 * len(values)}

	code, err := intstream.EncodeVerifyInt32s(values)
	if err != nil {
		result.errMsg = err.Error()
		return result
	}
	result.encodedBytes = len(code)
	result.ok = true
	return result
}

func runUnsigned(values []int32) trialResult {
	result := trialResult{rawBytes: 4 * len(values)}

	unsigned := make([]uint32, len(values))
	for i, v := range values {
		unsigned[i] = intstream.ZigzagEncode(v)
	}

	code := intstream.EncodeUint32s(unsigned)
	result.encodedBytes = len(code)

	decoded, err := intstream.DecodeUint32s(code, len(unsigned))
	if err != nil {
		result.errMsg = err.Error()
		return result
	}
	for i := range unsigned {
		if decoded[i] != unsigned[i] {
			result.errMsg = fmt.Sprintf("value %d: decoded %d, want %d", i, decoded[i], unsigned[i])
			return result
		}
	}
	result.ok = true
	return result
}
