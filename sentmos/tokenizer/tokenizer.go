package tokenizer

import (
	"fmt"
	"runtime"
)

// Tokenizer converts raw sentences to model-ready padded encodings
type Tokenizer interface {
	Tokenize(texts []string) (*Batch, error)
}

// Config holds basic tokenizer settings
type Config struct {
	MaxSeqLen int
	// Workers bounds the number of goroutines used for batch encoding.
	// Zero selects a CPU-based default.
	Workers int
}

func (c Config) maxSeqLen() int {
	if c.MaxSeqLen <= 0 {
		return 512
	}
	return c.MaxSeqLen
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return min(max(runtime.NumCPU(), 2), 16)
}

// ErrUnsupported indicates the tokenizer could not be initialized
var ErrUnsupported = fmt.Errorf("unsupported tokenizer configuration")
