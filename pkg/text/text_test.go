package text

import (
	"errors"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		input    []byte
		expected string
		err      error
	}{
		{input: nil, expected: ""},
		{input: []byte("hello"), expected: "hello"},
		{input: []byte("héllo wörld"), expected: "héllo wörld"},
		{input: []byte("数据"), expected: "数据"},
		{input: []byte{0xff, 0xfe}, err: ErrInvalidUTF8},
		{input: []byte{'a', 0xc3}, err: ErrInvalidUTF8}, // truncated rune
	}

	for i, test := range tests {
		s, err := Read(test.input)

		if !errors.Is(err, test.err) {
			t.Fatalf("test %d: expected error %v, got %v", i, test.err, err)
		}

		if s != test.expected {
			t.Fatalf("test %d: expected %q, got %q", i, test.expected, s)
		}
	}
}
