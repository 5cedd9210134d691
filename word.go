package segmsg

import "unsafe"

// WordSize is the number of bytes in a Word. All message buffers are
// measured and allocated in whole words.
const WordSize = 8

// Word is an opaque 8-byte unit of storage. Segment contents are kept as
// words; byte-level access goes through the aliasing helpers below.
type Word [WordSize]byte

// SegmentSlice is a half-open range of word offsets into a message's owned
// buffer. Slices are contiguous and in segment order: the first starts at 0,
// and each subsequent slice starts where the previous ended.
type SegmentSlice struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the segment's length in words.
func (s SegmentSlice) Len() int {
	return s.End - s.Start
}

// WordsToBytes returns the byte view of words without copying. The view
// aliases the word slice.
//
//go:inline
func WordsToBytes(words []Word) []byte {
	if len(words) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*WordSize)
}

// BytesToWords returns the word view of b without copying, truncating any
// trailing partial word. The view aliases the byte slice.
//
//go:inline
func BytesToWords(b []byte) []Word {
	if len(b) < WordSize {
		return nil
	}

	return unsafe.Slice((*Word)(unsafe.Pointer(&b[0])), len(b)/WordSize)
}
