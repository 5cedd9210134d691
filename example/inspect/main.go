package main

import (
	"log"
	"os"

	"github.com/bytefold/segmsg"
)

// Reads one segmented message from a file (or stdin) and prints its segment
// layout as JSON.
func main() {
	r := os.Stdin

	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])

		if err != nil {
			log.Fatalln(err)
		}

		defer f.Close()
		r = f
	}

	msg, err := segmsg.ReadMessage(r)

	if err != nil {
		log.Fatalln(err)
	}

	out := segmsg.AppendJSON(nil, msg)
	out = append(out, '\n')

	os.Stdout.Write(out)
}
