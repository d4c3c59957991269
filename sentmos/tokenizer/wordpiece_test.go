package tokenizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vocab ids are line numbers: [PAD]=0 [UNK]=1 [CLS]=2 [SEP]=3 the=4 ...
var testVocab = []string{
	"[PAD]", "[UNK]", "[CLS]", "[SEP]",
	"the", "cat", "sat",
	"a", "very", "long", "complicated", "sentence", "about", "quantum", "mechanics",
}

func writeTestVocab(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	content := ""
	for _, tok := range testVocab {
		content += tok + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWordPieceTokenize(t *testing.T) {
	wp, err := LoadWordPieceFromVocab(writeTestVocab(t), Config{MaxSeqLen: 64})
	require.NoError(t, err)

	batch, err := wp.Tokenize([]string{
		"The cat sat.",
		"A very long complicated sentence about quantum mechanics.",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, batch.Len())
	// both rows are padded to the longest sentence in the batch
	assert.Equal(t, 10, batch.SeqLen())
	assert.Equal(t, []string{FieldInputIDs, FieldTypeIDs, FieldAttentionMask}, batch.FieldNames())

	row0 := batch.Row(0)
	assert.Equal(t, []int64{2, 4, 5, 6, 3, 0, 0, 0, 0, 0}, row0[FieldInputIDs])
	assert.Equal(t, []int64{1, 1, 1, 1, 1, 0, 0, 0, 0, 0}, row0[FieldAttentionMask])
	assert.Equal(t, make([]int64, 10), row0[FieldTypeIDs])

	row1 := batch.Row(1)
	assert.Equal(t, []int64{2, 7, 8, 9, 10, 11, 12, 13, 14, 3}, row1[FieldInputIDs])
	assert.Equal(t, []int64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, row1[FieldAttentionMask])
}

func TestWordPieceUnknownToken(t *testing.T) {
	wp, err := LoadWordPieceFromVocab(writeTestVocab(t), Config{MaxSeqLen: 64})
	require.NoError(t, err)

	batch, err := wp.Tokenize([]string{"the dog sat"})
	require.NoError(t, err)

	row := batch.Row(0)
	assert.Equal(t, []int64{2, 4, 1, 6, 3}, row[FieldInputIDs])
}

func TestWordPieceTruncation(t *testing.T) {
	wp, err := LoadWordPieceFromVocab(writeTestVocab(t), Config{MaxSeqLen: 4})
	require.NoError(t, err)

	batch, err := wp.Tokenize([]string{"the cat sat the cat sat"})
	require.NoError(t, err)

	assert.Equal(t, 4, batch.SeqLen())
	row := batch.Row(0)
	// cls, first two tokens, sep
	assert.Equal(t, []int64{2, 4, 5, 3}, row[FieldInputIDs])
}

func TestWordPieceEmptyInput(t *testing.T) {
	wp, err := LoadWordPieceFromVocab(writeTestVocab(t), Config{MaxSeqLen: 64})
	require.NoError(t, err)

	batch, err := wp.Tokenize(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Len())
}

func TestLoadWordPieceMissingVocab(t *testing.T) {
	_, err := LoadWordPieceFromVocab(filepath.Join(t.TempDir(), "missing.txt"), Config{})
	assert.Error(t, err)
}
