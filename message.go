package segmsg

import "github.com/bytefold/segmsg/pkg/arena"

// Message is a fully decoded message: the validated segment slices, the
// owned word buffer they index into, the options the decode ran with, and a
// read-only arena over the segments. A Message is only ever constructed by
// a successful decode and is immutable afterwards.
type Message struct {
	opt    Options
	arena  *arena.Arena
	slices []SegmentSlice
	space  []Word
}

// NumSegments returns the number of segments in the message.
func (m *Message) NumSegments() int {
	return len(m.slices)
}

// Segment returns the i'th segment as a view into the message's owned
// buffer. It panics if i is out of range.
func (m *Message) Segment(i int) []Word {
	s := m.slices[i]
	return m.space[s.Start:s.End]
}

// SegmentBytes returns the i'th segment as a byte view into the message's
// owned buffer. The bytes must not be modified.
func (m *Message) SegmentBytes(i int) []byte {
	return WordsToBytes(m.Segment(i))
}

// TotalWords returns the total message size in words.
func (m *Message) TotalWords() int {
	return len(m.space)
}

// Options returns the options the message was decoded with.
func (m *Message) Options() Options {
	return m.opt
}

// Arena returns the read-only traversal context over the segments.
func (m *Message) Arena() *arena.Arena {
	return m.arena
}
