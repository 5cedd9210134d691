package segmsg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// drainAvailable fills buf with as many bytes as are immediately available
// from r, without blocking. It returns the number of bytes filled; a short
// count with a nil error means the source would block, which is the normal
// suspend trigger. An end of stream before buf is full is ErrPrematureEOF.
// Interrupted reads are retried transparently; any other error propagates
// unchanged.
func drainAvailable(r io.Reader, buf []byte) (n int, err error) {
	for n < len(buf) {
		nn, rerr := r.Read(buf[n:])
		n += nn

		switch {
		case rerr == nil:
			if nn == 0 {
				return n, fmt.Errorf("%w: empty read after %d of %d bytes", ErrPrematureEOF, n, len(buf))
			}

		case errors.Is(rerr, io.EOF):
			if n < len(buf) {
				return n, fmt.Errorf("%w: stream ended after %d of %d bytes", ErrPrematureEOF, n, len(buf))
			}

		case wouldBlock(rerr):
			return n, nil

		case interrupted(rerr):
			// Retry immediately; nothing was transferred.

		default:
			return n, rerr
		}
	}

	return n, nil
}

// wouldBlock reports whether err is a suspend signal rather than a failure.
// Besides the package's own sentinel, EAGAIN from a nonblocking fd and an
// expired read deadline on a net.Conn both mean "no bytes right now".
func wouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, os.ErrDeadlineExceeded)
}

func interrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
