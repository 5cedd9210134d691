package segmsg

const (
	// DefaultTraversalLimitWords bounds the total size of an accepted
	// message to 64 MiB.
	DefaultTraversalLimitWords = 8 * 1024 * 1024

	// DefaultNestingLimit bounds pointer depth during traversal.
	DefaultNestingLimit = 64
)

type Options struct {
	// TraversalLimitWords is the maximum total message size, in words. A
	// message whose segment table declares more words than this is rejected
	// before its buffer is allocated.
	TraversalLimitWords uint64

	// NestingLimit is the maximum pointer depth allowed when the decoded
	// message is traversed.
	NestingLimit int
}

func (opt *Options) setDefaults() {
	if opt.TraversalLimitWords == 0 {
		opt.TraversalLimitWords = DefaultTraversalLimitWords
	}

	if opt.NestingLimit <= 0 {
		opt.NestingLimit = DefaultNestingLimit
	}
}
