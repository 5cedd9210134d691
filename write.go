package segmsg

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/webmafia/fast/buffer"
)

var tableBufPool buffer.Pool

// WriteMessage writes the wire encoding of the given segments to w: the
// segment table (count word, per-segment lengths, padded to a whole word
// for even segment counts), followed by each segment's raw words in order.
func WriteMessage(w io.Writer, segments [][]Word) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: 0", ErrTooFewSegments)
	}

	if len(segments) >= maxSegments {
		return fmt.Errorf("%w: %d", ErrTooManySegments, len(segments))
	}

	buf := tableBufPool.Get()
	defer tableBufPool.Put(buf)

	buf.B = binary.LittleEndian.AppendUint32(buf.B, uint32(len(segments)-1))

	for _, seg := range segments {
		buf.B = binary.LittleEndian.AppendUint32(buf.B, uint32(len(seg)))
	}

	// The table must end on a word boundary.
	if len(segments)%2 == 0 {
		buf.B = append(buf.B, 0, 0, 0, 0)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return err
	}

	for _, seg := range segments {
		if _, err := w.Write(WordsToBytes(seg)); err != nil {
			return err
		}
	}

	return nil
}
