// Package ldclump identifies locally independent index variants by LD-based
// clumping: variants are ranked by p-value, compared only within a
// base-pair window on their own chromosome, and dropped when their r² with a
// more significant index variant is high.
//
// The pieces are usable on their own:
//
//   - Store keeps variants in canonical (chromosome, position, declaration)
//     order and ranks them by p-value (SortByP, RankByP).
//   - BuildClumpWindows assigns each variant its window in one linear sweep.
//   - LDEngine computes r² from 2-bit packed genotypes. UpdateIndexTot
//     summarizes a reference variant once; R2 then compares it against any
//     candidate using AND and population counts over 64 samples at a time.
//   - GenotypeStore holds the packed vectors and the shared SampleMask.
//   - Clumper drives a full clumping pass over all of the above.
//
// Reading genotype files and computing association statistics are left to
// the caller.
package ldclump
