package segmsg

import (
	"errors"
	"io"
)

var (
	// ErrWouldBlock signals that no more bytes are currently available. A
	// nonblocking byte source returns it (possibly wrapped) from Read to
	// suspend an in-progress decode instead of blocking.
	ErrWouldBlock = errors.New("read would block")

	// ErrPrematureEOF is returned when the stream ends before the expected
	// byte count is reached.
	ErrPrematureEOF = io.ErrUnexpectedEOF

	// ErrTooManySegments is returned when the segment count is 512 or more.
	ErrTooManySegments = errors.New("too many segments")

	// ErrTooFewSegments is returned when the segment count wraps around to zero.
	ErrTooFewSegments = errors.New("too few segments")

	// ErrMessageTooLarge is returned when the declared total message size
	// exceeds Options.TraversalLimitWords. The check happens before the
	// message buffer is allocated.
	ErrMessageTooLarge = errors.New("message is too large")
)
