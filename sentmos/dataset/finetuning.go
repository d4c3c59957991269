package dataset

// FinetuningDataset adapts a ComplexityDataset (or any view over one)
// for a generic supervised-training loop by stripping the sentence
// identifier from each record. It owns no data.
type FinetuningDataset struct {
	ds Dataset
}

func NewFinetuningDataset(ds Dataset) *FinetuningDataset {
	return &FinetuningDataset{ds: ds}
}

func (f *FinetuningDataset) Len() int { return f.ds.Len() }

// ItemAt delegates to the wrapped dataset and removes the identifier
// entry. Removal is a no-op when the entry is already absent, e.g. when
// wrapping another adapter.
func (f *FinetuningDataset) ItemAt(idx int) (Item, error) {
	item, err := f.ds.ItemAt(idx)
	if err != nil {
		return nil, err
	}
	delete(item, KeyID)
	return item, nil
}
