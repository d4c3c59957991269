package tokenizer

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
	tk "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Pretrained wraps a HuggingFace tokenizer.json resolved by model name.
// The first load for a given model downloads the tokenizer assets into
// the local cache; subsequent loads hit the cache.
type Pretrained struct {
	t         *tk.Tokenizer
	padID     int
	maxSeqLen int
	workers   int
}

// NewPretrained resolves modelName (e.g. "bert-base-uncased") against the
// HuggingFace hub and builds a tokenizer from its tokenizer.json.
// An unknown or unreachable model name fails here, not at encode time.
func NewPretrained(modelName string, cfg Config) (*Pretrained, error) {
	configFile, err := tk.CachedPath(modelName, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("resolving tokenizer for model %q: %w", modelName, err)
	}
	t, err := pretrained.FromFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading tokenizer for model %q: %w", modelName, err)
	}
	t.WithTruncation(&tk.TruncationParams{MaxLength: cfg.maxSeqLen()})

	padID := 0
	if id, ok := t.TokenToId("[PAD]"); ok {
		padID = int(id)
	}
	return &Pretrained{
		t:         t,
		padID:     padID,
		maxSeqLen: cfg.maxSeqLen(),
		workers:   cfg.workers(),
	}, nil
}

// Tokenize encodes the sentences concurrently, pads them to the longest
// sequence in the batch (capped at the configured max length) and returns
// input ids, token type ids and attention masks.
func (p *Pretrained) Tokenize(texts []string) (*Batch, error) {
	encs := make([]*tk.Encoding, len(texts))

	workers := p.workers
	if workers > len(texts) && len(texts) > 0 {
		workers = len(texts)
	}
	encoders := pool.New().WithMaxGoroutines(workers).WithErrors()
	for i, text := range texts {
		encoders.Go(func() error {
			enc, err := p.t.EncodeSingle(text, true)
			if err != nil {
				return fmt.Errorf("encoding sentence %d: %w", i, err)
			}
			encs[i] = enc
			return nil
		})
	}
	if err := encoders.Wait(); err != nil {
		return nil, err
	}

	seqLen := 0
	for _, enc := range encs {
		if l := len(enc.Ids); l > seqLen {
			seqLen = l
		}
	}
	if seqLen > p.maxSeqLen {
		seqLen = p.maxSeqLen
	}

	ids := make([][]int64, len(encs))
	typeIDs := make([][]int64, len(encs))
	masks := make([][]int64, len(encs))
	for i, enc := range encs {
		rowIDs := make([]int64, seqLen)
		rowTypes := make([]int64, seqLen)
		rowMask := make([]int64, seqLen)
		n := len(enc.Ids)
		if n > seqLen {
			n = seqLen
		}
		for j := 0; j < n; j++ {
			rowIDs[j] = int64(enc.Ids[j])
			if j < len(enc.TypeIds) {
				rowTypes[j] = int64(enc.TypeIds[j])
			}
			rowMask[j] = 1
		}
		// remaining positions stay at pad id / type 0 / mask 0
		for j := n; j < seqLen; j++ {
			rowIDs[j] = int64(p.padID)
		}
		ids[i] = rowIDs
		typeIDs[i] = rowTypes
		masks[i] = rowMask
	}

	return assembleBatch(ids, typeIDs, masks)
}

func assembleBatch(ids, typeIDs, masks [][]int64) (*Batch, error) {
	b := NewBatch()
	if err := b.AddField(FieldInputIDs, ids); err != nil {
		return nil, err
	}
	if err := b.AddField(FieldTypeIDs, typeIDs); err != nil {
		return nil, err
	}
	if err := b.AddField(FieldAttentionMask, masks); err != nil {
		return nil, err
	}
	return b, nil
}
