package intstream

import (
	"bytes"
	"errors"
	"testing"
)

// TestBitWriterReaderRoundtrip writes fields of every width and reads them back
func TestBitWriterReaderRoundtrip(t *testing.T) {
	// an alternating pattern truncated to each field width
	field := func(count uint32) uint32 {
		if count == 32 {
			return 0xA5A5A5A5
		}
		return 0xA5A5A5A5 & (uint32(1)<<count - 1)
	}

	writer := NewBitWriter(16)
	for count := uint32(0); count <= 32; count++ {
		writer.Write(count, field(count))
	}
	writer.Flush()

	reader := NewBitReader(writer.Code())
	for count := uint32(0); count <= 32; count++ {
		want := field(count)
		got, err := reader.Read(count)
		if err != nil {
			t.Fatalf("Read(%d) failed: %v", count, err)
		}
		if got != want {
			t.Errorf("Read(%d) = %#x, want %#x", count, got, want)
		}
	}
}

// TestBitWriterOrder checks the low-to-high bit packing of the wire format
func TestBitWriterOrder(t *testing.T) {
	writer := NewBitWriter(4)
	writer.Write(1, 1)
	writer.Write(2, 0)
	writer.Write(3, 0b101)
	writer.Write(4, 0b0110)
	writer.Flush()

	// bit 0 = 1, bits 1-2 = 00, bits 3-5 = 101, bits 6-9 = 0110
	want := []byte{0b10101001, 0b00000001}
	if !bytes.Equal(writer.Code(), want) {
		t.Errorf("Code() = %08b, want %08b", writer.Code(), want)
	}
}

// TestBitReaderShortRead checks that running out of bytes is reported, not ignored
func TestBitReaderShortRead(t *testing.T) {
	reader := NewBitReader([]byte{0xFF})
	if _, err := reader.Read(8); err != nil {
		t.Fatalf("Read(8) failed: %v", err)
	}
	if _, err := reader.Read(1); !errors.Is(err, ErrShortRead) {
		t.Errorf("Read(1) past the end = %v, want ErrShortRead", err)
	}

	reader = NewBitReader([]byte{0xFF, 0xFF})
	if _, err := reader.Read(3); err != nil {
		t.Fatalf("Read(3) failed: %v", err)
	}
	if _, err := reader.Read(14); !errors.Is(err, ErrShortRead) {
		t.Errorf("Read(14) with 13 bits left = %v, want ErrShortRead", err)
	}
}

// TestBitReaderNextCode checks the chaining offset after whole and partial bytes
func TestBitReaderNextCode(t *testing.T) {
	reader := NewBitReader([]byte{0x12, 0x34, 0x56})
	if got := reader.NextCode(); got != 0 {
		t.Errorf("NextCode() before any read = %d, want 0", got)
	}
	reader.Read(3)
	if got := reader.NextCode(); got != 1 {
		t.Errorf("NextCode() after 3 bits = %d, want 1", got)
	}
	reader.Read(5)
	if got := reader.NextCode(); got != 1 {
		t.Errorf("NextCode() after 8 bits = %d, want 1", got)
	}
	reader.Read(9)
	if got := reader.NextCode(); got != 3 {
		t.Errorf("NextCode() after 17 bits = %d, want 3", got)
	}
}

// TestBitWriterMisusePanics checks the writer's lifecycle contract
func TestBitWriterMisusePanics(t *testing.T) {
	expectPanic := func(t *testing.T, name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}

	t.Run("DoubleFlush", func(t *testing.T) {
		writer := NewBitWriter(4)
		writer.Write(1, 1)
		writer.Flush()
		expectPanic(t, "second Flush", writer.Flush)
	})
	t.Run("CodeBeforeFlush", func(t *testing.T) {
		writer := NewBitWriter(4)
		expectPanic(t, "Code before Flush", func() { writer.Code() })
	})
	t.Run("DirtyHighBits", func(t *testing.T) {
		writer := NewBitWriter(4)
		expectPanic(t, "Write with bits above count", func() { writer.Write(3, 0b1000) })
	})
}
