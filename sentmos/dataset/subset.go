package dataset

import "fmt"

// Subset is an index-selected view over another dataset. The selector
// indices need not be contiguous or ordered. A Subset owns no data and
// must not outlive the dataset it views.
type Subset struct {
	ds      Dataset
	indices []int
}

// NewSubset validates the selector indices against the wrapped dataset
// once, so ItemAt only has to range-check its own index.
func NewSubset(ds Dataset, indices []int) (*Subset, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= ds.Len() {
			return nil, fmt.Errorf("subset selector %w: %d with length %d", ErrIndexOutOfRange, idx, ds.Len())
		}
	}
	sel := make([]int, len(indices))
	copy(sel, indices)
	return &Subset{ds: ds, indices: sel}, nil
}

func (s *Subset) Len() int { return len(s.indices) }

func (s *Subset) ItemAt(idx int) (Item, error) {
	if idx < 0 || idx >= len(s.indices) {
		return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, idx, len(s.indices))
	}
	return s.ds.ItemAt(s.indices[idx])
}
