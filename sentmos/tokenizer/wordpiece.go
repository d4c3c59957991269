package tokenizer

import (
	"bufio"
	"os"
	"strings"
	"unicode"
)

// WordPiece is a minimal vocab-file tokenizer for offline use (tests,
// air-gapped runs). It lowercases, splits on non-alphanumerics and does
// whole-word vocab lookups; no subword merging. For real encodings use
// Pretrained.
type WordPiece struct {
	vocab     map[string]int64
	unkID     int64
	clsID     int64
	sepID     int64
	padID     int64
	maxSeqLen int
}

// LoadWordPieceFromVocab reads a newline-delimited vocab file where a
// token's id is its zero-based line number (HuggingFace vocab.txt layout).
func LoadWordPieceFromVocab(path string, cfg Config) (*WordPiece, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vocab := make(map[string]int64, 60000)
	var idx int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		vocab[tok] = idx
		idx++
	}
	wp := &WordPiece{vocab: vocab, maxSeqLen: cfg.maxSeqLen()}
	// Defaults match the standard BERT vocab layout when the special
	// tokens are missing from the file.
	wp.unkID = lookupOr(vocab, "[UNK]", 100)
	wp.clsID = lookupOr(vocab, "[CLS]", 101)
	wp.sepID = lookupOr(vocab, "[SEP]", 102)
	wp.padID = lookupOr(vocab, "[PAD]", 0)
	return wp, scanner.Err()
}

func lookupOr(vocab map[string]int64, token string, def int64) int64 {
	if id, ok := vocab[token]; ok {
		return id
	}
	return def
}

func (w *WordPiece) Tokenize(texts []string) (*Batch, error) {
	rows := make([][]int64, len(texts))
	for i, t := range texts {
		words := strings.FieldsFunc(strings.ToLower(t), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		seq := make([]int64, 0, len(words)+2)
		seq = append(seq, w.clsID)
		for _, word := range words {
			id, ok := w.vocab[word]
			if !ok {
				id = w.unkID
			}
			seq = append(seq, id)
			if len(seq) >= w.maxSeqLen-1 {
				break
			}
		}
		seq = append(seq, w.sepID)
		rows[i] = seq
	}

	// pad to the longest sequence in the batch
	seqLen := 0
	for _, seq := range rows {
		if len(seq) > seqLen {
			seqLen = len(seq)
		}
	}

	ids := make([][]int64, len(rows))
	typeIDs := make([][]int64, len(rows))
	masks := make([][]int64, len(rows))
	for i, seq := range rows {
		rowIDs := make([]int64, seqLen)
		rowMask := make([]int64, seqLen)
		copy(rowIDs, seq)
		for j := range seq {
			rowMask[j] = 1
		}
		for j := len(seq); j < seqLen; j++ {
			rowIDs[j] = w.padID
		}
		ids[i] = rowIDs
		typeIDs[i] = make([]int64, seqLen)
		masks[i] = rowMask
	}
	return assembleBatch(ids, typeIDs, masks)
}
