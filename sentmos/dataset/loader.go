package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	internal "github.com/lingprep/sentmos/sentmos"
	"github.com/lingprep/sentmos/sentmos/config"
	"github.com/lingprep/sentmos/sentmos/tokenizer"
)

// Recognized CSV columns. sent_id and sentence are required, MOS is the
// optional target-score column.
const (
	ColumnSentID   = "sent_id"
	ColumnSentence = "sentence"
	ColumnMOS      = "MOS"
)

// ErrMissingColumn indicates the CSV lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

type sentenceRow struct {
	SentID   int64   `csv:"sent_id"`
	Sentence string  `csv:"sentence"`
	MOS      float64 `csv:"MOS"`
}

// Load reads a sentence-complexity CSV and tokenizes its sentences with
// the given tokenizer. Target presence is decided by the header alone:
// a present MOS column always yields targets, even if every score is
// zero. No validation beyond the required columns happens here; schema
// correctness is the producer's contract.
func Load(csvPath string, tok tokenizer.Tokenizer) (*ComplexityDataset, error) {
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file %s: %w", csvPath, err)
	}

	header, err := csv.NewReader(bytes.NewReader(raw)).Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header from %s: %w", csvPath, err)
	}
	columns := make(map[string]bool, len(header))
	for _, name := range header {
		columns[strings.TrimSpace(name)] = true
	}
	for _, required := range []string{ColumnSentID, ColumnSentence} {
		if !columns[required] {
			return nil, fmt.Errorf("%w %q in %s", ErrMissingColumn, required, csvPath)
		}
	}
	hasMOS := columns[ColumnMOS]

	var rows []*sentenceRow
	if err := gocsv.UnmarshalBytes(raw, &rows); err != nil {
		return nil, fmt.Errorf("parsing dataset file %s: %w", csvPath, err)
	}

	ids := make([]int64, len(rows))
	sentences := make([]string, len(rows))
	mos := make([]float64, len(rows))
	for i, row := range rows {
		ids[i] = row.SentID
		sentences[i] = row.Sentence
		mos[i] = row.MOS
	}

	st, err := tok.Tokenize(sentences)
	if err != nil {
		return nil, fmt.Errorf("tokenizing %d sentences from %s: %w", len(sentences), csvPath, err)
	}

	cols := Columns{IDs: ids, Encodings: st}
	if hasMOS {
		cols.MOS = mos
	}
	ds := NewComplexityDataset(cols)

	logger := internal.GetLogger()
	summary := Summarize(ds)
	logger.Debug().
		Str("dataset", ds.UID()).
		Str("path", csvPath).
		Int("rows", summary.Rows).
		Int("seqLen", summary.SeqLen).
		Bool("targets", summary.HasTargets).
		Float64("mosMean", summary.MOSMean).
		Float64("meanTokens", summary.MeanTokens).
		Msg("loaded sentence-complexity dataset")

	return ds, nil
}

// GetDataset loads a CSV with a pretrained tokenizer resolved by model
// name, using the default sequence-length settings.
func GetDataset(csvPath string, modelName string) (*ComplexityDataset, error) {
	tok, err := tokenizer.NewPretrained(modelName, tokenizer.Config{MaxSeqLen: internal.DefaultMaxSeqLen})
	if err != nil {
		return nil, err
	}
	return Load(csvPath, tok)
}

// LoadWithConfig is GetDataset driven by an application config instead
// of call-site literals.
func LoadWithConfig(csvPath string, cfg *config.Config) (*ComplexityDataset, error) {
	tok, err := tokenizer.NewPretrained(cfg.Sentmos.Model, tokenizer.Config{
		MaxSeqLen: cfg.Sentmos.MaxSeqLen,
		Workers:   cfg.Sentmos.Workers,
	})
	if err != nil {
		return nil, err
	}
	return Load(csvPath, tok)
}
