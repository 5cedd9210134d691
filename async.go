package segmsg

import "io"

// AsyncValue is the result of a nonblocking operation: either the operation
// completed with a value, or it ran out of input and must be continued once
// more bytes are available.
type AsyncValue[T, U any] struct {
	val  T
	cont U
	done bool
}

// Complete wraps a finished value.
func Complete[T, U any](val T) AsyncValue[T, U] {
	return AsyncValue[T, U]{val: val, done: true}
}

// Continue wraps a continuation for a suspended operation.
func Continue[T, U any](cont U) AsyncValue[T, U] {
	return AsyncValue[T, U]{cont: cont}
}

// Done reports whether the operation completed.
func (v AsyncValue[T, U]) Done() bool {
	return v.done
}

// Unwrap returns the completed value. It panics if the operation was
// suspended; extracting the wrong variant is a caller protocol violation,
// not a recoverable condition.
func (v AsyncValue[T, U]) Unwrap() T {
	if !v.done {
		panic("segmsg: Unwrap called on a Continue value")
	}

	return v.val
}

// UnwrapContinuation returns the continuation of a suspended operation. It
// panics if the operation completed.
func (v AsyncValue[T, U]) UnwrapContinuation() U {
	if v.done {
		panic("segmsg: UnwrapContinuation called on a Complete value")
	}

	return v.cont
}

// AsyncRead is the result of a nonblocking message read.
type AsyncRead = AsyncValue[*Message, ReadContinuation]

// ReadContinuation captures the partial state of a suspended message read.
// It is only valid for resuming the exact phase that produced it, on the
// same stream it was produced from; partial byte counts are meaningless
// relative to any other stream position. Dropping a continuation abandons
// the decode with no side effects.
type ReadContinuation interface {
	resume(r io.Reader) (AsyncRead, error)
}

// tableFirstCont suspends the read of the first segment-table word.
type tableFirstCont struct {
	opt Options
	buf [8]byte
	n   int
}

func (c *tableFirstCont) resume(r io.Reader) (AsyncRead, error) {
	return readMessage(r, c.opt, c.buf, c.n)
}

// tableRestCont suspends the read of the remaining segment-table entries.
type tableRestCont struct {
	opt          Options
	segmentCount int
	firstLen     int
	buf          []byte
	n            int
}

func (c *tableRestCont) resume(r io.Reader) (AsyncRead, error) {
	return readMessageRest(r, c.opt, c.segmentCount, c.firstLen, c.buf, c.n)
}

// segmentsCont suspends the read of the segment bodies.
type segmentsCont struct {
	opt    Options
	slices []SegmentSlice
	space  []Word
	n      int
}

func (c *segmentsCont) resume(r io.Reader) (AsyncRead, error) {
	return readSegments(r, c.opt, c.slices, c.space, c.n)
}
