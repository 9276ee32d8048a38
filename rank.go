package ldclump

import "slices"

// RankByP returns a permutation of indices into vs that visits the variants
// from most to least significant: ascending p-value, unknown (NaN) p-values
// last. Equal p-values keep their relative order in vs, so when vs is in
// canonical order the ranking is deterministic.
//
// vs is not modified. An empty slice yields an empty permutation.
func RankByP(vs []Variant) []int {
	idx := make([]int, len(vs))
	for i := range idx {
		idx[i] = i
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		return compareP(vs[a].P, vs[b].P)
	})

	return idx
}
