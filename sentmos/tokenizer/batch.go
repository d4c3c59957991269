package tokenizer

import (
	"fmt"
)

// Canonical field names produced by the tokenizers in this package.
// They follow the naming of HuggingFace-style encoders so downstream
// consumers can feed rows straight into a model.
const (
	FieldInputIDs      = "input_ids"
	FieldTypeIDs       = "token_type_ids"
	FieldAttentionMask = "attention_mask"
)

// Batch is the padded encoding of a set of sentences. Each field is a
// rectangular [numSentences][seqLen] matrix; all fields share the same
// shape. A Batch is built once by a Tokenizer and read-only afterwards.
type Batch struct {
	names  []string
	fields map[string][][]int64
}

func NewBatch() *Batch {
	return &Batch{fields: make(map[string][][]int64)}
}

// AddField appends a named matrix to the batch. The rows must be
// rectangular and, if other fields are already present, match their shape.
func (b *Batch) AddField(name string, rows [][]int64) error {
	if _, ok := b.fields[name]; ok {
		return fmt.Errorf("batch field %q already present", name)
	}
	seqLen := -1
	for i, row := range rows {
		if seqLen == -1 {
			seqLen = len(row)
		}
		if len(row) != seqLen {
			return fmt.Errorf("batch field %q is ragged: row %d has length %d, want %d", name, i, len(row), seqLen)
		}
	}
	if len(b.names) > 0 {
		if len(rows) != b.Len() {
			return fmt.Errorf("batch field %q has %d rows, existing fields have %d", name, len(rows), b.Len())
		}
		if len(rows) > 0 && seqLen != b.SeqLen() {
			return fmt.Errorf("batch field %q has sequence length %d, existing fields have %d", name, seqLen, b.SeqLen())
		}
	}
	b.names = append(b.names, name)
	b.fields[name] = rows
	return nil
}

// Len returns the number of sentences in the batch.
func (b *Batch) Len() int {
	if len(b.names) == 0 {
		return 0
	}
	return len(b.fields[b.names[0]])
}

// SeqLen returns the common padded sequence length, 0 for an empty batch.
func (b *Batch) SeqLen() int {
	if b.Len() == 0 {
		return 0
	}
	return len(b.fields[b.names[0]][0])
}

// FieldNames returns the field names in insertion order.
func (b *Batch) FieldNames() []string {
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

// Field returns the full matrix for a named field.
func (b *Batch) Field(name string) ([][]int64, bool) {
	rows, ok := b.fields[name]
	return rows, ok
}

// Row returns one entry per field, sliced to sentence i. The returned
// slices alias the batch storage and must not be mutated.
// The caller is responsible for bounds checking: 0 <= i < Len().
func (b *Batch) Row(i int) map[string][]int64 {
	row := make(map[string][]int64, len(b.names))
	for _, name := range b.names {
		row[name] = b.fields[name][i]
	}
	return row
}
