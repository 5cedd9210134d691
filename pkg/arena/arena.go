// Package arena provides the read-only traversal context over the segments
// of a decoded message. It hands out segment views by id and charges all
// reads against a shared traversal budget.
package arena

import (
	"errors"
	"fmt"
)

var ErrSegmentOutOfBounds = errors.New("segment id out of bounds")

type Arena struct {
	segments [][]byte
	limiter  ReadLimiter
}

// New builds an arena over the given per-segment byte views. The views must
// outlive the arena; the arena never copies or mutates them. The traversal
// limit, in words, bounds the total amount of data the arena's limiter will
// allow to be read.
func New(segments [][]byte, traversalLimitWords uint64) *Arena {
	return &Arena{
		segments: segments,
		limiter: ReadLimiter{
			remaining: traversalLimitWords,
		},
	}
}

// NumSegments returns the number of segments in the arena.
func (a *Arena) NumSegments() int {
	return len(a.segments)
}

// Segment returns the byte view of the segment with the given id.
func (a *Arena) Segment(id uint32) ([]byte, error) {
	if int64(id) >= int64(len(a.segments)) {
		return nil, fmt.Errorf("%w: %d (message has %d segments)", ErrSegmentOutOfBounds, id, len(a.segments))
	}

	return a.segments[id], nil
}

// Limiter returns the arena's read limiter.
func (a *Arena) Limiter() *ReadLimiter {
	return &a.limiter
}
