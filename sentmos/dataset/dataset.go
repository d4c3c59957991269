package dataset

import "errors"

// Item keys carried alongside the raw tokenizer fields.
const (
	KeyID    = "id"
	KeyLabel = "label"
)

// ErrIndexOutOfRange is returned by ItemAt for indices outside [0, Len()).
var ErrIndexOutOfRange = errors.New("dataset index out of range")

// Item is one training/inference record: one entry per tokenizer field
// ([]int64 rows), the sentence identifier under KeyID (int64) and, when
// the dataset carries targets, the MOS score under KeyLabel (float64).
type Item map[string]any

// Dataset is the sized, indexable collection of records consumed by a
// training or evaluation loop. Both the primary container and any view
// over it (Subset, FinetuningDataset) implement it.
type Dataset interface {
	Len() int
	ItemAt(idx int) (Item, error)
}
