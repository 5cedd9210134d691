package segmsg

import (
	"github.com/segmentio/encoding/json"
	"github.com/webmafia/fast"
)

type messageLayout struct {
	SegmentCount int            `json:"segmentCount"`
	TotalWords   int            `json:"totalWords"`
	Segments     []SegmentSlice `json:"segments"`
}

// AppendJSON appends a JSON description of the message's segment layout to
// dst. It describes the framing only, not the message contents.
func AppendJSON(dst []byte, msg *Message) []byte {
	layout := messageLayout{
		SegmentCount: len(msg.slices),
		TotalWords:   len(msg.space),
		Segments:     msg.slices,
	}

	newDst, err := json.Append(dst, fast.Noescape(&layout), 0)

	if err != nil {
		return dst
	}

	return newDst
}
