package ldclump

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/carbocation/pfx"
)

// Method selects the LD statistic an LDEngine reports.
type Method uint8

const (
	// Haplotype is the squared correlation of the maximum-likelihood
	// two-locus haplotype frequencies (EM phasing of double
	// heterozygotes). This is what PLINK clumps on.
	Haplotype Method = iota
	// Dosage is the squared Pearson correlation of allele dosages.
	Dosage
)

func (m Method) String() string {
	switch m {
	case Haplotype:
		return "haplotype"
	case Dosage:
		return "dosage"
	default:
		return "Illegal selection"
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "haplotype", "":
		return Haplotype, nil
	case "dosage":
		return Dosage, nil
	}
	return 0, pfx.Err(fmt.Errorf("unknown r2 method %q", s))
}

// IndexSummary is what UpdateIndexTot derives from a reference variant: its
// calls split into per-class planes over the included samples, and the
// reference-side totals of the correlation formula. It is immutable and may
// be shared by concurrent R2 calls.
type IndexSummary struct {
	planes     genotypePlanes
	nonMissing *bitset.BitSet
	nSamples   int

	// N is the number of included, non-missing samples.
	N int
	// Sum and SumSq are the sums of dosage and squared dosage over them.
	Sum   int
	SumSq int
}

// Monomorphic reports whether the reference has zero dosage variance over
// its own non-missing included samples. Such a reference has r² = 0 with
// every candidate.
func (s *IndexSummary) Monomorphic() bool {
	return s.N*s.SumSq-s.Sum*s.Sum <= 0
}

// LDEngine computes r² between packed genotype vectors over the samples of
// one shared SampleMask. Beyond its configuration it holds no mutable state;
// all methods are safe for concurrent use.
type LDEngine struct {
	mask     *SampleMask
	include2 []uint64
	method   Method
	logger   *Logger

	scratch sync.Pool
}

// NewLDEngine returns an engine over mask. The mask is snapshotted; later
// changes to it do not reach the engine.
func NewLDEngine(mask *SampleMask, opts ...Option) *LDEngine {
	o := applyOptions(opts)
	e := &LDEngine{
		mask:     mask,
		include2: mask.expand2(),
		method:   o.method,
		logger:   o.logger,
	}
	nWords := len(e.include2)
	e.scratch.New = func() any {
		p := newGenotypePlanes(nWords)
		return &p
	}
	return e
}

// Method returns the statistic the engine reports.
func (e *LDEngine) Method() Method { return e.method }

// Mask returns the engine's sample mask.
func (e *LDEngine) Mask() *SampleMask { return e.mask }

// UpdateIndexTot summarizes ref so that it can be compared against any
// number of candidates without rescanning it. Cost is O(samples/64).
func (e *LDEngine) UpdateIndexTot(ref PackedVector) (*IndexSummary, error) {
	if err := checkSampleCount(e.mask, ref); err != nil {
		return nil, pfx.Err(err)
	}

	nWords := len(e.include2)
	s := &IndexSummary{
		planes:     newGenotypePlanes(nWords),
		nonMissing: bitset.From(make([]uint64, nWords)),
		nSamples:   ref.NSamples(),
	}
	splitPlanes(ref, e.include2, s.planes)

	nm := s.nonMissing.Words()
	homRef, het, homAlt := s.planes.homRef.Words(), s.planes.het.Words(), s.planes.homAlt.Words()
	for i := range nm {
		nm[i] = homRef[i] | het[i] | homAlt[i]
	}

	nHet := int(s.planes.het.Count())
	nHomAlt := int(s.planes.homAlt.Count())
	s.N = int(s.nonMissing.Count())
	s.Sum = nHet + 2*nHomAlt
	s.SumSq = nHet + 4*nHomAlt

	return s, nil
}

// R2 returns r² between the reference summarized in idx and cand, over the
// included samples non-missing at both. Degenerate comparisons (monomorphic
// or no overlap) give 0. A candidate or summary whose sample count differs
// from the engine's mask is an error, as is a nil summary.
func (e *LDEngine) R2(cand PackedVector, idx *IndexSummary) (float64, error) {
	if idx == nil {
		return 0, pfx.Err(fmt.Errorf("nil index summary"))
	}
	if err := checkSampleCount(e.mask, cand); err != nil {
		return 0, pfx.Err(err)
	}
	if idx.nSamples != e.mask.NSamples() {
		return 0, pfx.Err(&SampleCountMismatchError{Expected: e.mask.NSamples(), Actual: idx.nSamples})
	}

	if idx.N == 0 || idx.Monomorphic() {
		return 0, nil
	}

	t := e.countTable(cand, idx)
	switch e.method {
	case Dosage:
		return t.dosageR2(), nil
	default:
		return t.haplotypeR2(), nil
	}
}

// countTable fills the 3x3 table of (reference class, candidate class)
// sample counts with one AND+popcount per cell.
func (e *LDEngine) countTable(cand PackedVector, idx *IndexSummary) genotypeTable {
	p := e.scratch.Get().(*genotypePlanes)
	defer e.scratch.Put(p)

	splitPlanes(cand, e.include2, *p)

	ref := [3]*bitset.BitSet{idx.planes.homRef, idx.planes.het, idx.planes.homAlt}
	other := [3]*bitset.BitSet{p.homRef, p.het, p.homAlt}

	var t genotypeTable
	for a := range ref {
		for b := range other {
			t[a][b] = float64(ref[a].IntersectionCardinality(other[b]))
		}
	}
	return t
}

// UpdateIndexTot summarizes ref over mask with the default (Haplotype)
// method. Callers comparing many pairs should build one LDEngine instead.
func UpdateIndexTot(ref PackedVector, mask *SampleMask) (*IndexSummary, error) {
	return NewLDEngine(mask).UpdateIndexTot(ref)
}

// GetR2 returns the Haplotype r² between the reference summarized in idx and
// cand over mask.
func GetR2(cand PackedVector, mask *SampleMask, idx *IndexSummary) (float64, error) {
	return NewLDEngine(mask).R2(cand, idx)
}

// genotypeTable[a][b] counts samples with reference dosage a and candidate
// dosage b.
type genotypeTable [3][3]float64

func (t *genotypeTable) dosageR2() float64 {
	var n, sx, sy, sxx, syy, sxy float64
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			c := t[a][b]
			x, y := float64(a), float64(b)
			n += c
			sx += c * x
			sy += c * y
			sxx += c * x * x
			syy += c * y * y
			sxy += c * x * y
		}
	}

	vx := n*sxx - sx*sx
	vy := n*syy - sy*sy
	if vx <= 0 || vy <= 0 {
		return 0
	}
	cov := n*sxy - sx*sy
	return clampUnit(cov * cov / (vx * vy))
}

func clampUnit(r2 float64) float64 {
	if math.IsNaN(r2) || r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}
	return r2
}
