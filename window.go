package ldclump

// BuildClumpWindows assigns each variant in vs the maximal half-open range
// [LowBound, UpBound) of indices j such that vs[j] is on the same chromosome
// and |Position(j) - Position(i)| <= distance. vs must be in canonical order
// (a Store's Variants always are).
//
// Both bounds only move forward within a chromosome, so a single two-pointer
// sweep covers all variants. A chromosome change restarts the sweep.
//
// The return value is the largest number of variants any window holds from
// its lower bound up to and including its own variant: max(i - LowBound + 1).
// That is the scratch size a driver needs to keep the already-visited part
// of every window.
//
// A negative distance gives every variant the singleton window [i, i+1).
func BuildClumpWindows(vs []Variant, distance int64) int {
	n := len(vs)
	if n == 0 {
		return 0
	}

	if distance < 0 {
		for i := range vs {
			vs[i].lowBound = i
			vs[i].upBound = i + 1
		}
		return 1
	}

	maxWindow := 0
	low, up := 0, 0
	for i := range vs {
		cur := &vs[i]
		if i == 0 || cur.Chromosome != vs[i-1].Chromosome {
			low, up = i, i
		}

		for cur.Position-vs[low].Position > distance {
			low++
		}

		if up <= i {
			up = i + 1
		}
		for up < n && vs[up].Chromosome == cur.Chromosome && vs[up].Position-cur.Position <= distance {
			up++
		}

		cur.lowBound = low
		cur.upBound = up

		if w := i - low + 1; w > maxWindow {
			maxWindow = w
		}
	}

	return maxWindow
}
