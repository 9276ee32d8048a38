package ldclump

import (
	"context"
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"golang.org/x/sync/errgroup"
)

// ClumpParams are the thresholds of one clumping pass.
type ClumpParams struct {
	// DistanceBP is the window half-width in base pairs.
	DistanceBP int64
	// R2Threshold is the r² at or above which a variant is clumped to its
	// index variant.
	R2Threshold float64
	// PThreshold is the largest p-value an index variant may have.
	PThreshold float64
}

// Clump is one index variant and the variants clumped to it, all as
// canonical store indices. Members are in canonical order.
type Clump struct {
	Index   int
	Members []int
}

// Clumper walks variants from most to least significant and clumps every
// less significant neighbour in LD with a retained index variant.
type Clumper struct {
	store     *Store
	genotypes *GenotypeStore
	engine    *LDEngine
	workers   int
	logger    *Logger

	clumped []bool
	index   []int
}

// NewClumper wires a variant store, its genotypes and an engine built over
// the same sample mask.
func NewClumper(store *Store, genotypes *GenotypeStore, engine *LDEngine, opts ...Option) (*Clumper, error) {
	if genotypes.Mask().NSamples() != engine.Mask().NSamples() {
		return nil, pfx.Err(&SampleCountMismatchError{Expected: engine.Mask().NSamples(), Actual: genotypes.Mask().NSamples()})
	}

	o := applyOptions(opts)
	return &Clumper{
		store:     store,
		genotypes: genotypes,
		engine:    engine,
		workers:   o.workers,
		logger:    o.logger,
	}, nil
}

// Run performs one clumping pass and returns the clumps in rank order of
// their index variants. Variants with an unknown p-value or one above
// PThreshold never become index variants but may be clumped.
//
// The context is checked between windows.
func (c *Clumper) Run(ctx context.Context, params ClumpParams) (clumps []Clump, err error) {
	n := c.store.Len()
	c.clumped = make([]bool, n)
	c.index = c.index[:0]
	clumpedCount := 0
	defer func() {
		c.logger.LogClump(ctx, len(clumps), clumpedCount, err)
	}()

	c.store.BuildClumpWindows(params.DistanceBP)
	vs := c.store.Variants()

	for _, i := range c.store.SortedPIndex() {
		if err := ctx.Err(); err != nil {
			return clumps, pfx.Err(err)
		}

		v := &vs[i]
		if math.IsNaN(v.P) || v.P > params.PThreshold {
			// Ranked order: nothing after this can be an index either.
			break
		}
		if c.clumped[i] {
			continue
		}

		members, err := c.clumpWindow(i, params.R2Threshold)
		if err != nil {
			return clumps, pfx.Err(err)
		}

		c.clumped[i] = true
		for _, j := range members {
			c.clumped[j] = true
		}
		clumpedCount += len(members)
		c.logger.LogIndex(ctx, v, len(members))
		c.index = append(c.index, i)
		clumps = append(clumps, Clump{Index: i, Members: members})
	}

	return clumps, nil
}

// clumpWindow returns the unclumped variants in i's window whose r² with i
// reaches threshold.
func (c *Clumper) clumpWindow(i int, threshold float64) ([]int, error) {
	vs := c.store.Variants()
	low, up := vs[i].LowBound(), vs[i].UpBound()

	ref, err := c.genotypes.Vector(vs[i].Name)
	if err != nil {
		return nil, pfx.Err(err)
	}
	idx, err := c.engine.UpdateIndexTot(ref)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if idx.Monomorphic() {
		return nil, nil
	}

	hit := make([]bool, up-low)
	var g errgroup.Group
	g.SetLimit(c.workers)
	for j := low; j < up; j++ {
		if j == i || c.clumped[j] {
			continue
		}
		g.Go(func() error {
			cand, err := c.genotypes.Vector(vs[j].Name)
			if err != nil {
				return err
			}
			r2, err := c.engine.R2(cand, idx)
			if err != nil {
				return fmt.Errorf("%s vs %s: %w", vs[i].Name, vs[j].Name, err)
			}
			hit[j-low] = r2 >= threshold
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var members []int
	for k, ok := range hit {
		if ok {
			members = append(members, low+k)
		}
	}
	return members, nil
}

// Remaining returns the index variants retained by the last Run, most
// significant first.
func (c *Clumper) Remaining() []int {
	return c.index
}

// Clumped reports whether the variant at canonical index i was absorbed into
// a clump (as a member or an index) by the last Run.
func (c *Clumper) Clumped(i int) bool {
	return i >= 0 && i < len(c.clumped) && c.clumped[i]
}
