package segmsg

import (
	"bytes"
	"testing"
)

func FuzzReadMessage(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{
		1, 0, 0, 0,
		1, 0, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 0,
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	})
	f.Add([]byte{255, 255, 255, 255, 0, 0, 0, 0})
	f.Add([]byte{255, 1, 0, 0, 0, 0, 0, 0})

	opt := Options{TraversalLimitWords: 1 << 16}

	f.Fuzz(func(t *testing.T, data []byte) {
		msg, err := ReadMessage(bytes.NewReader(data), opt)

		if err != nil {
			return
		}

		// A successful decode must uphold the slice invariants: contiguous,
		// in order, starting at zero and covering the whole buffer.
		offset := 0

		for i := range msg.NumSegments() {
			seg := msg.slices[i]

			if seg.Start != offset || seg.End < seg.Start {
				t.Fatalf("segment %d has bounds %v at offset %d", i, seg, offset)
			}

			offset = seg.End
		}

		if offset != msg.TotalWords() {
			t.Fatalf("segments cover %d words, buffer has %d", offset, msg.TotalWords())
		}
	})
}
