package ldclump

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/carbocation/pfx"
)

// Sample is one cohort member. Only founders contribute to LD statistics.
type Sample struct {
	SampleID string
	Founder  bool
}

// SampleMask marks which samples are included (founders) in LD statistics.
// It is built once per cohort and shared read-only by every comparison; do
// not mutate it after handing it to an LDEngine or GenotypeStore.
type SampleMask struct {
	included *bitset.BitSet
	n        int
}

// NewSampleMask returns a mask over n samples with every sample included.
func NewSampleMask(n int) *SampleMask {
	m := &SampleMask{
		included: bitset.New(uint(n)),
		n:        n,
	}
	for i := 0; i < n; i++ {
		m.included.Set(uint(i))
	}
	return m
}

// SampleMaskFromSamples includes exactly the founders among samples.
func SampleMaskFromSamples(samples []Sample) *SampleMask {
	m := &SampleMask{
		included: bitset.New(uint(len(samples))),
		n:        len(samples),
	}
	for i, s := range samples {
		if s.Founder {
			m.included.Set(uint(i))
		}
	}
	return m
}

// Exclude drops sample i from the mask.
func (m *SampleMask) Exclude(i int) error {
	if i < 0 || i >= m.n {
		return pfx.Err(fmt.Errorf("sample %d is out of range for %d samples", i, m.n))
	}
	m.included.Clear(uint(i))
	return nil
}

// Included reports whether sample i is included.
func (m *SampleMask) Included(i int) bool {
	return i >= 0 && i < m.n && m.included.Test(uint(i))
}

// NSamples returns the cohort size, included or not.
func (m *SampleMask) NSamples() int { return m.n }

// Count returns the number of included samples.
func (m *SampleMask) Count() int { return int(m.included.Count()) }

// expand2 spreads the mask into the 2-bit packed layout: the low bit of
// sample i's slot is set when sample i is included.
func (m *SampleMask) expand2() []uint64 {
	out := make([]uint64, wordsFor(m.n))
	for i, ok := m.included.NextSet(0); ok && int(i) < m.n; i, ok = m.included.NextSet(i + 1) {
		out[i/samplesPerWord] |= 1 << (2 * (i % samplesPerWord))
	}
	return out
}
