package ldclump

import (
	"cmp"
	"fmt"
	"math"
)

// Variant is one SNP: identity, position, association statistic and the
// clump-window bounds assigned by BuildClumpWindows.
//
// FileIndex and Offset form the declaration key: where the variant was
// declared by whatever loaded it (which input file, and where in that file).
// The key breaks ties between variants at the same position so that the
// canonical order does not depend on the order variants arrive in.
type Variant struct {
	Name       string
	Chromosome int
	Position   int64
	Ref        string
	Alt        string

	// P is the association p-value. NaN means not yet known.
	P float64
	// Stat is a placeholder statistic carried for callers that load
	// variants before their p-value is available.
	Stat float64

	FileIndex int
	Offset    int64

	lowBound int
	upBound  int
}

// NewVariant returns a variant with an unknown p-value and no window.
func NewVariant(name string, chr int, pos int64, ref, alt string) Variant {
	return Variant{
		Name:       name,
		Chromosome: chr,
		Position:   pos,
		Ref:        ref,
		Alt:        alt,
		P:          math.NaN(),
		lowBound:   -1,
		upBound:    -1,
	}
}

// LowBound is the first index (inclusive) of the variant's clump window in
// the canonical order, or -1 before a window build.
func (v *Variant) LowBound() int { return v.lowBound }

// UpBound is the end index (exclusive) of the variant's clump window in the
// canonical order, or -1 before a window build.
func (v *Variant) UpBound() int { return v.upBound }

// HasWindow reports whether a window build has assigned bounds.
func (v *Variant) HasWindow() bool { return v.upBound >= 0 }

func (v *Variant) resetWindow() {
	v.lowBound = -1
	v.upBound = -1
}

func (v Variant) String() string {
	return fmt.Sprintf("%s %s:%d %s/%s p=%g", v.Name, ChromosomeName(v.Chromosome), v.Position, v.Ref, v.Alt, v.P)
}

// CompareCanonical orders variants by chromosome, then base-pair position,
// then declaration key (FileIndex, Offset), then Name.
func CompareCanonical(a, b *Variant) int {
	if c := cmp.Compare(a.Chromosome, b.Chromosome); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Position, b.Position); c != 0 {
		return c
	}
	if c := cmp.Compare(a.FileIndex, b.FileIndex); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// compareP orders p-values ascending with NaN (unknown) last.
func compareP(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(a, b)
}
