// Package text reads text fields out of raw message bytes. Text on the
// wire is required to be valid UTF-8; the returned strings alias the
// underlying buffer and must not outlive the message that owns it.
package text

import (
	"errors"
	"unicode/utf8"

	"github.com/webmafia/fast"
)

var ErrInvalidUTF8 = errors.New("text contains non-UTF-8 data")

// Read validates b as UTF-8 and returns it as a string without copying.
func Read(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}

	return fast.BytesToString(b), nil
}
