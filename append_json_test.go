package segmsg

import (
	"bytes"
	"fmt"
)

func ExampleAppendJSON() {
	data := []byte{
		1, 0, 0, 0, // 2 segments
		1, 0, 0, 0, // 1 length
		1, 0, 0, 0, // 1 length
		0, 0, 0, 0, // padding
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}

	msg, err := ReadMessage(bytes.NewReader(data))

	if err != nil {
		panic(err)
	}

	fmt.Println(string(AppendJSON(nil, msg)))

	// Output: {"segmentCount":2,"totalWords":2,"segments":[{"start":0,"end":1},{"start":1,"end":2}]}
}
