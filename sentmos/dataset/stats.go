package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lingprep/sentmos/sentmos/tokenizer"
)

// Summary carries load-time statistics for a dataset, logged once after
// construction so the training-loop owner can sanity-check the split.
type Summary struct {
	Rows       int
	SeqLen     int
	HasTargets bool

	// MOS statistics, zero-valued when the dataset carries no targets
	MOSMean   float64
	MOSStdDev float64
	MOSMin    float64
	MOSMax    float64

	// MeanTokens is the mean count of non-padding tokens per sentence.
	MeanTokens float64
}

// Summarize computes summary statistics over a primary container.
func Summarize(d *ComplexityDataset) Summary {
	s := Summary{
		Rows:       d.Len(),
		SeqLen:     d.st.SeqLen(),
		HasTargets: d.hasMOS,
	}
	if d.hasMOS && len(d.mos) > 0 {
		s.MOSMean = stat.Mean(d.mos, nil)
		s.MOSStdDev = stat.StdDev(d.mos, nil)
		s.MOSMin = floats.Min(d.mos)
		s.MOSMax = floats.Max(d.mos)
	}
	if masks, ok := d.st.Field(tokenizer.FieldAttentionMask); ok && len(masks) > 0 {
		lengths := make([]float64, len(masks))
		for i, mask := range masks {
			for _, m := range mask {
				lengths[i] += float64(m)
			}
		}
		s.MeanTokens = floats.Sum(lengths) / float64(len(lengths))
	}
	return s
}
