package ldclump

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// DefaultHardCallThreshold is the largest distance between a sample's
// expected dosage and an integer dosage that still yields a call.
const DefaultHardCallThreshold = 0.1

// SampleProbability is the genotype probability data for one individual at
// one biallelic locus, as handed over by a dosage-format loader:
// Probabilities holds P(HomRef), P(Het), P(HomAlt).
type SampleProbability struct {
	Missing       bool
	Probabilities [3]float64
}

// Dosage returns the expected number of alternate alleles.
func (sp SampleProbability) Dosage() float64 {
	return sp.Probabilities[1] + 2*sp.Probabilities[2]
}

// HardCall converts genotype probabilities into a PackedVector. A sample is
// called as the integer dosage nearest its expected dosage when the two are
// no more than threshold apart; otherwise, or when flagged missing, the call
// is Missing.
func HardCall(probs []SampleProbability, threshold float64) (PackedVector, error) {
	if threshold < 0 || threshold >= 0.5 || math.IsNaN(threshold) {
		return PackedVector{}, pfx.Err(fmt.Errorf("hard-call threshold %g must be in [0, 0.5)", threshold))
	}

	calls := make([]Genotype, len(probs))
	for i, sp := range probs {
		calls[i] = Missing
		if sp.Missing {
			continue
		}

		dosage := sp.Dosage()
		nearest := math.Round(dosage)
		if math.Abs(dosage-nearest) > threshold {
			continue
		}
		switch nearest {
		case 0:
			calls[i] = HomRef
		case 1:
			calls[i] = Het
		case 2:
			calls[i] = HomAlt
		}
	}

	return Pack(calls), nil
}
