package ldclump

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/carbocation/pfx"
)

// Store owns variants in canonical genomic order (see CompareCanonical).
// Add only appends; the order and the name index are restored lazily by the
// next query, so loading n variants one at a time costs one sort.
//
// A Store is not safe for concurrent use. Queries may reorder lazily, so
// call SortByP before handing a loaded store to several readers.
type Store struct {
	variants []Variant
	names    map[string]struct{}
	byName   map[string]int

	// sorted is false when appended variants broke canonical order.
	sorted bool
	// indexed is false when byName lags behind variants.
	indexed bool

	pIndex    []int
	pIndexOK  bool
	windowsOK bool
	maxWindow int

	logger *Logger
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	o := applyOptions(opts)
	return &Store{
		names:   make(map[string]struct{}),
		byName:  make(map[string]int),
		sorted:  true,
		indexed: true,
		logger:  o.logger,
	}
}

// Add loads variants into the store. Names must be unique across the store;
// on a duplicate nothing is loaded.
//
// Adding invalidates the significance rank and every window bound.
func (s *Store) Add(vs ...Variant) error {
	if len(vs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(vs))
	for i := range vs {
		name := vs[i].Name
		if _, ok := s.names[name]; ok {
			return pfx.Err(fmt.Errorf("%w: %s", ErrDuplicateVariant, name))
		}
		if _, ok := seen[name]; ok {
			return pfx.Err(fmt.Errorf("%w: %s", ErrDuplicateVariant, name))
		}
		seen[name] = struct{}{}
	}

	if s.windowsOK {
		for i := range s.variants {
			s.variants[i].resetWindow()
		}
		s.windowsOK = false
	}
	s.maxWindow = 0
	s.pIndex = nil
	s.pIndexOK = false

	for _, v := range vs {
		v.resetWindow()
		if n := len(s.variants); s.sorted && n > 0 && CompareCanonical(&s.variants[n-1], &v) > 0 {
			s.sorted = false
		}
		if s.sorted && s.indexed {
			s.byName[v.Name] = len(s.variants)
		} else {
			s.indexed = false
		}
		s.names[v.Name] = struct{}{}
		s.variants = append(s.variants, v)
	}

	return nil
}

// canonicalize restores canonical order and the name index after Add.
func (s *Store) canonicalize() {
	if !s.sorted {
		slices.SortFunc(s.variants, func(a, b Variant) int {
			return CompareCanonical(&a, &b)
		})
		s.sorted = true
		s.indexed = false
	}
	if !s.indexed {
		clear(s.byName)
		for i := range s.variants {
			s.byName[s.variants[i].Name] = i
		}
		s.indexed = true
	}
}

// Len returns the number of variants.
func (s *Store) Len() int { return len(s.variants) }

// At returns the variant at canonical index i. The pointer aliases the
// store's own storage: only P and Stat may be written through it (prefer
// SetP). Changing the name, position or declaration key corrupts the order
// and the name index.
func (s *Store) At(i int) *Variant {
	s.canonicalize()
	return &s.variants[i]
}

// Variants returns the variants in canonical order. The slice is the store's
// own storage and must be treated as read-only.
func (s *Store) Variants() []Variant {
	s.canonicalize()
	return s.variants
}

// Index returns the canonical index of the named variant.
func (s *Store) Index(name string) (int, bool) {
	s.canonicalize()
	i, ok := s.byName[name]
	return i, ok
}

// Lookup returns the named variant. The same aliasing rules as At apply.
func (s *Store) Lookup(name string) (*Variant, error) {
	i, ok := s.Index(name)
	if !ok {
		return nil, pfx.Err(fmt.Errorf("%w: %s", ErrUnknownVariant, name))
	}
	return &s.variants[i], nil
}

// SetP records the p-value of a loaded variant. The significance rank is
// invalidated; the canonical order and windows are not affected.
func (s *Store) SetP(name string, p float64) error {
	v, err := s.Lookup(name)
	if err != nil {
		return pfx.Err(err)
	}
	v.P = p
	s.pIndex = nil
	s.pIndexOK = false
	return nil
}

// SortByP computes the significance rank permutation without moving the
// underlying variants. See RankByP.
func (s *Store) SortByP() {
	s.canonicalize()
	s.pIndex = RankByP(s.variants)
	s.pIndexOK = true

	unknown := 0
	for i := range s.variants {
		if math.IsNaN(s.variants[i].P) {
			unknown++
		}
	}
	s.logger.LogRank(context.Background(), len(s.variants), unknown)
}

// SortedPIndex returns the significance rank permutation: canonical indices
// from most to least significant. It is recomputed if the store changed
// since the last SortByP.
func (s *Store) SortedPIndex() []int {
	if !s.pIndexOK {
		s.SortByP()
	}
	return s.pIndex
}

// BuildClumpWindows assigns every variant its clump window for the given
// distance. See the package-level BuildClumpWindows.
func (s *Store) BuildClumpWindows(distance int64) {
	s.canonicalize()
	s.maxWindow = BuildClumpWindows(s.variants, distance)
	s.windowsOK = true
	s.logger.LogWindows(context.Background(), len(s.variants), distance, s.maxWindow)
}

// WindowsBuilt reports whether BuildClumpWindows has run since the store
// last changed.
func (s *Store) WindowsBuilt() bool { return s.windowsOK }

// MaxWindow returns the value computed by the last BuildClumpWindows, or 0
// if none has run since the store last changed.
func (s *Store) MaxWindow() int { return s.maxWindow }

// Window returns the half-open window [low, up) of the variant at canonical
// index i, or (-1, -1) when windows are not built.
func (s *Store) Window(i int) (low, up int) {
	if !s.windowsOK {
		return -1, -1
	}
	return s.variants[i].lowBound, s.variants[i].upBound
}
