// Package segmsg decodes and encodes length-prefixed, segmented binary
// message envelopes. The decoder is resumable: it consumes a nonblocking
// byte source and, whenever the source runs dry mid-message, returns a
// continuation value that resumes the decode exactly where it left off.
package segmsg

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bytefold/segmsg/pkg/arena"
)

// maxSegments is the exclusive upper bound on the segment count.
const maxSegments = 512

// segmentTable is the decoded first word of the segment table.
type segmentTable struct {
	segmentCount int
	firstLen     int
}

// tableLayout is the fully decoded segment table.
type tableLayout struct {
	totalWords int
	slices     []SegmentSlice
}

// ReadMessageAsync reads one message from r without blocking. If r runs out
// of bytes mid-message, the returned value holds a ReadContinuation that
// the caller must pass to ResumeRead, on the same stream, once more input
// may be available. Scheduling of retries is entirely up to the caller.
func ReadMessageAsync(r io.Reader, options ...Options) (AsyncRead, error) {
	var opt Options

	if len(options) > 0 {
		opt = options[0]
	}

	opt.setDefaults()

	return readMessage(r, opt, [8]byte{}, 0)
}

// ResumeRead resumes a suspended message read with more input from r, which
// must be the same stream the continuation was produced from.
func ResumeRead(r io.Reader, cont ReadContinuation) (AsyncRead, error) {
	return cont.resume(r)
}

// ReadMessage reads one message from a blocking reader, driving the resume
// loop internally. With a nonblocking reader it busy-loops; callers that
// can observe readiness should use ReadMessageAsync and ResumeRead instead.
func ReadMessage(r io.Reader, options ...Options) (*Message, error) {
	v, err := ReadMessageAsync(r, options...)

	for {
		if err != nil {
			return nil, err
		}

		if v.Done() {
			return v.Unwrap(), nil
		}

		v, err = ResumeRead(r, v.UnwrapContinuation())
	}
}

// suspendRead converts a phase's suspension into a suspension of the whole
// message read. The second return value reports whether the phase suspended.
func suspendRead[T any](v AsyncValue[T, ReadContinuation]) (AsyncRead, bool) {
	if v.Done() {
		return AsyncRead{}, false
	}

	return Continue[*Message, ReadContinuation](v.UnwrapContinuation()), true
}

// readMessage runs the full decode pipeline from the first table word.
func readMessage(r io.Reader, opt Options, buf [8]byte, n int) (AsyncRead, error) {
	v, err := readSegmentTableFirst(r, opt, buf, n)

	if err != nil {
		return AsyncRead{}, err
	}

	if ar, suspended := suspendRead(v); suspended {
		return ar, nil
	}

	table := v.Unwrap()

	// A single-segment message has no further table entries; the first
	// word already described the whole table. The traversal limit still
	// applies before the body is allocated.
	if table.segmentCount == 1 {
		if err := checkTotalWords(opt, table.firstLen); err != nil {
			return AsyncRead{}, err
		}

		layout := tableLayout{
			totalWords: table.firstLen,
			slices:     []SegmentSlice{{0, table.firstLen}},
		}

		return readMessageBody(r, opt, layout)
	}

	return readMessageRest(r, opt, table.segmentCount, table.firstLen, makeSegmentTableBuf(table.segmentCount), 0)
}

// readMessageRest runs the pipeline from the second table phase onwards.
func readMessageRest(r io.Reader, opt Options, segmentCount, firstLen int, buf []byte, n int) (AsyncRead, error) {
	v, err := readSegmentTableRest(r, opt, segmentCount, firstLen, buf, n)

	if err != nil {
		return AsyncRead{}, err
	}

	if ar, suspended := suspendRead(v); suspended {
		return ar, nil
	}

	return readMessageBody(r, opt, v.Unwrap())
}

// readMessageBody allocates the message buffer and reads the segment
// bodies. The traversal limit has been enforced by this point, so the
// allocation is bounded.
func readMessageBody(r io.Reader, opt Options, layout tableLayout) (AsyncRead, error) {
	return readSegments(r, opt, layout.slices, make([]Word, layout.totalWords), 0)
}

// readSegmentTableFirst reads, or continues reading, the first word of the
// segment table: a little-endian u32 segment count minus one, then a u32
// first-segment length in words. The count is decoded with wrapping
// arithmetic, so a wire value of 0xFFFFFFFF wraps to zero and is rejected
// as too few segments rather than accepted as a huge count.
func readSegmentTableFirst(r io.Reader, opt Options, buf [8]byte, n int) (AsyncValue[segmentTable, ReadContinuation], error) {
	nn, err := drainAvailable(r, buf[n:])
	n += nn

	if err != nil {
		return AsyncValue[segmentTable, ReadContinuation]{}, err
	}

	if n < len(buf) {
		cont := &tableFirstCont{
			opt: opt,
			buf: buf,
			n:   n,
		}

		return Continue[segmentTable, ReadContinuation](cont), nil
	}

	segmentCount := binary.LittleEndian.Uint32(buf[0:4]) + 1

	if segmentCount >= maxSegments {
		return AsyncValue[segmentTable, ReadContinuation]{}, fmt.Errorf("%w: %d", ErrTooManySegments, segmentCount)
	}

	if segmentCount == 0 {
		return AsyncValue[segmentTable, ReadContinuation]{}, fmt.Errorf("%w: %d", ErrTooFewSegments, segmentCount)
	}

	table := segmentTable{
		segmentCount: int(segmentCount),
		firstLen:     int(binary.LittleEndian.Uint32(buf[4:8])),
	}

	return Complete[segmentTable, ReadContinuation](table), nil
}

// readSegmentTableRest reads, or continues reading, the table entries after
// the first word: segmentCount-1 little-endian u32 lengths in words, padded
// to a whole word. It builds the segment slices and enforces the traversal
// limit before any allocation proportional to the declared size is made.
func readSegmentTableRest(r io.Reader, opt Options, segmentCount, firstLen int, buf []byte, n int) (AsyncValue[tableLayout, ReadContinuation], error) {
	nn, err := drainAvailable(r, buf[n:])
	n += nn

	if err != nil {
		return AsyncValue[tableLayout, ReadContinuation]{}, err
	}

	if n < len(buf) {
		cont := &tableRestCont{
			opt:          opt,
			segmentCount: segmentCount,
			firstLen:     firstLen,
			buf:          buf,
			n:            n,
		}

		return Continue[tableLayout, ReadContinuation](cont), nil
	}

	slices := make([]SegmentSlice, 0, segmentCount)
	slices = append(slices, SegmentSlice{0, firstLen})
	totalWords := firstLen

	// Trailing padding (present for even segment counts) is ignored.
	for i := range segmentCount - 1 {
		segmentLen := int(binary.LittleEndian.Uint32(buf[i*4:]))
		slices = append(slices, SegmentSlice{totalWords, totalWords + segmentLen})
		totalWords += segmentLen
	}

	if err := checkTotalWords(opt, totalWords); err != nil {
		return AsyncValue[tableLayout, ReadContinuation]{}, err
	}

	layout := tableLayout{
		totalWords: totalWords,
		slices:     slices,
	}

	return Complete[tableLayout, ReadContinuation](layout), nil
}

// readSegments reads, or continues reading, the segment bodies into space,
// then partitions the buffer into per-segment views and builds the finished
// message.
func readSegments(r io.Reader, opt Options, slices []SegmentSlice, space []Word, n int) (AsyncRead, error) {
	buf := WordsToBytes(space)

	nn, err := drainAvailable(r, buf[n:])
	n += nn

	if err != nil {
		return AsyncRead{}, err
	}

	if n < len(buf) {
		cont := &segmentsCont{
			opt:    opt,
			slices: slices,
			space:  space,
			n:      n,
		}

		return Continue[*Message, ReadContinuation](cont), nil
	}

	segments := make([][]byte, len(slices))

	for i, s := range slices {
		segments[i] = buf[s.Start*WordSize : s.End*WordSize]
	}

	msg := &Message{
		opt:    opt,
		arena:  arena.New(segments, opt.TraversalLimitWords),
		slices: slices,
		space:  space,
	}

	return Complete[*Message, ReadContinuation](msg), nil
}

// checkTotalWords rejects a message which the receiver couldn't possibly
// traverse within the traversal limit. Without this check, a hostile sender
// could declare a huge total size and force the receiver to commit
// unbounded memory before a single body byte has arrived.
func checkTotalWords(opt Options, totalWords int) error {
	if uint64(totalWords) > opt.TraversalLimitWords {
		return fmt.Errorf("%w: %d words exceeds traversal limit of %d", ErrMessageTooLarge, totalWords, opt.TraversalLimitWords)
	}

	return nil
}

// makeSegmentTableBuf allocates a buffer for the table entries after the
// first word: segmentCount-1 u32 lengths, rounded up to a whole word.
func makeSegmentTableBuf(segmentCount int) []byte {
	return make([]byte, (segmentCount/2)*8)
}
