package arena

import (
	"bytes"
	"errors"
	"testing"
)

func TestSegmentLookup(t *testing.T) {
	segments := [][]byte{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{},
		{9, 10, 11, 12, 13, 14, 15, 16},
	}

	a := New(segments, 1024)

	if a.NumSegments() != 3 {
		t.Fatalf("expected 3 segments, got %d", a.NumSegments())
	}

	for i, expected := range segments {
		seg, err := a.Segment(uint32(i))

		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(seg, expected) {
			t.Fatalf("segment %d: expected % x, got % x", i, expected, seg)
		}
	}

	if _, err := a.Segment(3); !errors.Is(err, ErrSegmentOutOfBounds) {
		t.Fatalf("expected %v, got %v", ErrSegmentOutOfBounds, err)
	}
}

func TestReadLimiter(t *testing.T) {
	a := New(nil, 10)
	lim := a.Limiter()

	if err := lim.CanRead(6); err != nil {
		t.Fatal(err)
	}

	if err := lim.CanRead(4); err != nil {
		t.Fatal(err)
	}

	if err := lim.CanRead(1); !errors.Is(err, ErrReadLimitExceeded) {
		t.Fatalf("expected %v, got %v", ErrReadLimitExceeded, err)
	}

	// A failed read spends nothing.
	if lim.Remaining() != 0 {
		t.Fatalf("expected 0 words remaining, got %d", lim.Remaining())
	}
}
