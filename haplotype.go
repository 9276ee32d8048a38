package ldclump

import (
	"math"
)

const phaseEpsilon = 1e-12

// haplotypeR2 estimates the two-locus haplotype frequencies from the
// genotype table by maximum likelihood and returns
// D² / (f1x·f2x·fx1·fx2), with allele 1 the reference allele at each locus.
//
// Every cell except the double heterozygote determines its haplotypes. The
// double heterozygotes are split between the 11/22 and 12/21 phases; the
// share x (in haplotype frequency units) assigned to 11/22 maximizes the
// likelihood, and the stationary points of that likelihood are the real
// roots of a cubic. The roots inside [0, half] and the two endpoints are
// scored and the best one kept.
func (t *genotypeTable) haplotypeR2() float64 {
	if t.constantRows() || t.constantCols() {
		return 0
	}

	known11 := 2*t[0][0] + t[0][1] + t[1][0]
	known12 := 2*t[0][2] + t[0][1] + t[1][2]
	known21 := 2*t[2][0] + t[2][1] + t[1][0]
	known22 := 2*t[2][2] + t[2][1] + t[1][2]
	hetHet := t[1][1]

	total := known11 + known12 + known21 + known22 + 2*hetHet
	if total == 0 {
		return 0
	}

	f11 := known11 / total
	f12 := known12 / total
	f21 := known21 / total
	f22 := known22 / total
	half := hetHet / total

	freq1x := f11 + f12 + half
	freqx1 := f11 + f21 + half
	denom := freq1x * (1 - freq1x) * freqx1 * (1 - freqx1)
	if denom <= 0 {
		return 0
	}

	x := 0.0
	if hetHet > 0 {
		lnLike := func(x float64) float64 {
			terms := [5][2]float64{
				{known11, f11 + x},
				{known22, f22 + x},
				{known12, f12 + half - x},
				{known21, f21 + half - x},
				{hetHet, (f11+x)*(f22+x) + (f12+half-x)*(f21+half-x)},
			}
			ll := 0.0
			for _, term := range terms {
				if term[0] == 0 {
					continue
				}
				if term[1] <= 0 {
					return math.Inf(-1)
				}
				ll += term[0] * math.Log(term[1])
			}
			return ll
		}

		candidates := []float64{0, half}
		roots := cubicRealRoots(
			0.5*(f11+f22-f12-f21-3*half),
			0.5*(f11*f22+f12*f21+half*(f12+f21-f11-f22+half)),
			-0.5*half*f11*f22,
		)
		for _, r := range roots {
			if r >= -phaseEpsilon && r <= half+phaseEpsilon {
				candidates = append(candidates, math.Min(math.Max(r, 0), half))
			}
		}

		best := math.Inf(-1)
		for _, c := range candidates {
			if ll := lnLike(c); ll > best {
				best = ll
				x = c
			}
		}
	}

	d := f11 + x - freq1x*freqx1
	return clampUnit(d * d / denom)
}

func (t *genotypeTable) constantRows() bool {
	nonEmpty := 0
	for a := 0; a < 3; a++ {
		if t[a][0]+t[a][1]+t[a][2] > 0 {
			nonEmpty++
		}
	}
	return nonEmpty <= 1
}

func (t *genotypeTable) constantCols() bool {
	nonEmpty := 0
	for b := 0; b < 3; b++ {
		if t[0][b]+t[1][b]+t[2][b] > 0 {
			nonEmpty++
		}
	}
	return nonEmpty <= 1
}

// cubicRealRoots returns the real roots of x³ + a·x² + b·x + c.
func cubicRealRoots(a, b, c float64) []float64 {
	q := (a*a - 3*b) / 9
	r := (2*a*a*a - 9*a*b + 27*c) / 54
	shift := a / 3

	q3 := q * q * q
	if r*r < q3 {
		theta := math.Acos(r / math.Sqrt(q3))
		s := -2 * math.Sqrt(q)
		return []float64{
			s*math.Cos(theta/3) - shift,
			s*math.Cos((theta+2*math.Pi)/3) - shift,
			s*math.Cos((theta-2*math.Pi)/3) - shift,
		}
	}

	big := -math.Copysign(math.Cbrt(math.Abs(r)+math.Sqrt(r*r-q3)), r)
	small := 0.0
	if big != 0 {
		small = q / big
	}
	return []float64{big + small - shift}
}
