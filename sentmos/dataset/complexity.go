package dataset

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/assert-lib"
	"github.com/google/uuid"

	"github.com/lingprep/sentmos/sentmos/tokenizer"
)

// Columns is the raw material for a ComplexityDataset: parallel arrays
// indexed by sentence position. A nil MOS slice means the source had no
// target column; that is a valid, permanent state, not an error.
type Columns struct {
	IDs       []int64
	Encodings *tokenizer.Batch
	MOS       []float64
}

// ComplexityDataset is the read-only indexed collection of tokenized
// sentences, their identifiers and optional MOS target scores.
type ComplexityDataset struct {
	uid string
	st  *tokenizer.Batch
	ids []int64
	mos []float64
	// targets are all-or-nothing per dataset, decided once here
	hasMOS bool
}

// NewComplexityDataset builds the container from pre-assembled columns.
// Mismatched column lengths are a programming error in the caller and
// are asserted, not handled.
func NewComplexityDataset(cols Columns) *ComplexityDataset {
	handler := assert.NewAssertHandler()
	ctx := context.Background()
	handler.Assert(ctx, cols.Encodings != nil, "encodings are required")
	handler.Assert(ctx, len(cols.IDs) == cols.Encodings.Len(), "identifier count must match encoded sentence count")
	if cols.MOS != nil {
		handler.Assert(ctx, len(cols.MOS) == len(cols.IDs), "target count must match identifier count")
	}

	return &ComplexityDataset{
		uid:    uuid.NewString(),
		st:     cols.Encodings,
		ids:    cols.IDs,
		mos:    cols.MOS,
		hasMOS: cols.MOS != nil,
	}
}

// UID returns the stable identity of this container instance, used for
// log correlation.
func (d *ComplexityDataset) UID() string { return d.uid }

// HasTargets reports whether the source carried a MOS column.
func (d *ComplexityDataset) HasTargets() bool { return d.hasMOS }

// Encodings exposes the underlying tokenized batch.
func (d *ComplexityDataset) Encodings() *tokenizer.Batch { return d.st }

// Len returns the number of sentences.
func (d *ComplexityDataset) Len() int { return len(d.ids) }

// ItemAt returns the record at idx: the tokenized sentence fields, the
// sentence identifier and, when targets are set, the MOS label.
func (d *ComplexityDataset) ItemAt(idx int) (Item, error) {
	if idx < 0 || idx >= d.Len() {
		return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, idx, d.Len())
	}
	item := make(Item, len(d.st.FieldNames())+2)
	for name, row := range d.st.Row(idx) {
		item[name] = row
	}
	item[KeyID] = d.ids[idx]
	if d.hasMOS {
		item[KeyLabel] = d.mos[idx]
	}
	return item, nil
}
