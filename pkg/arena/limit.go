package arena

import "errors"

var ErrReadLimitExceeded = errors.New("read limit exceeded")

// ReadLimiter tracks the remaining traversal budget of an arena. Every read
// through the arena spends part of the budget; once it is exhausted,
// further reads fail. This caps the work a maliciously self-referential
// message can cause.
type ReadLimiter struct {
	remaining uint64
}

// CanRead spends words from the budget, or fails without spending anything
// if the budget is too small.
func (l *ReadLimiter) CanRead(words uint64) error {
	if words > l.remaining {
		return ErrReadLimitExceeded
	}

	l.remaining -= words
	return nil
}

// Remaining returns the unspent traversal budget, in words.
func (l *ReadLimiter) Remaining() uint64 {
	return l.remaining
}
