package ldclump

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/zstd"
)

// GenotypeStore holds the packed genotype vector of every loaded variant,
// keyed by variant name, together with the cohort's shared SampleMask.
//
// With WithCompression the vectors are kept zstd-compressed and decoded on
// each fetch. Put must not race with Vector; concurrent Vector calls are
// safe.
type GenotypeStore struct {
	mask     *SampleMask
	compress bool
	logger   *Logger

	mu      sync.RWMutex
	vectors map[string]PackedVector
	packed  map[string][]byte

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewGenotypeStore returns an empty store for vectors over mask's samples.
func NewGenotypeStore(mask *SampleMask, opts ...Option) (*GenotypeStore, error) {
	o := applyOptions(opts)
	gs := &GenotypeStore{
		mask:     mask,
		compress: o.compress,
		logger:   o.logger,
		vectors:  make(map[string]PackedVector),
		packed:   make(map[string][]byte),
	}

	if gs.compress {
		var err error
		if gs.encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest)); err != nil {
			return nil, pfx.Err(err)
		}
		if gs.decoder, err = zstd.NewReader(nil); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return gs, nil
}

// Mask returns the shared sample mask.
func (gs *GenotypeStore) Mask() *SampleMask { return gs.mask }

// Len returns the number of stored vectors.
func (gs *GenotypeStore) Len() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.vectors) + len(gs.packed)
}

// Put stores the vector of the named variant, replacing any previous one.
// The vector's sample count must match the mask's.
func (gs *GenotypeStore) Put(name string, v PackedVector) error {
	if err := checkSampleCount(gs.mask, v); err != nil {
		return pfx.Err(err)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.compress {
		gs.vectors[name] = v
		return nil
	}

	raw := make([]byte, 8*len(v.words))
	for i, w := range v.words {
		binary.LittleEndian.PutUint64(raw[8*i:], w)
	}
	blob := gs.encoder.EncodeAll(raw, nil)
	gs.packed[name] = blob
	gs.logger.Debug("stored compressed genotypes",
		"variant", name,
		"raw_bytes", len(raw),
		"stored_bytes", len(blob),
	)

	return nil
}

// Vector returns the vector of the named variant.
func (gs *GenotypeStore) Vector(name string) (PackedVector, error) {
	gs.mu.RLock()
	v, ok := gs.vectors[name]
	blob, okPacked := gs.packed[name]
	gs.mu.RUnlock()

	if ok {
		return v, nil
	}
	if !okPacked {
		return PackedVector{}, pfx.Err(fmt.Errorf("%w: no genotypes for %s", ErrUnknownVariant, name))
	}

	raw, err := gs.decoder.DecodeAll(blob, nil)
	if err != nil {
		return PackedVector{}, pfx.Err(err)
	}
	n := gs.mask.NSamples()
	if len(raw) != 8*wordsFor(n) {
		return PackedVector{}, pfx.Err(fmt.Errorf("decoded %d bytes for %s, expected %d", len(raw), name, 8*wordsFor(n)))
	}

	words := make([]uint64, wordsFor(n))
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(raw[8*i:])
	}
	return PackedVector{words: words, n: n}, nil
}

// Close releases the zstd encoder and decoder, if any.
func (gs *GenotypeStore) Close() error {
	if gs.encoder != nil {
		if err := gs.encoder.Close(); err != nil {
			return pfx.Err(err)
		}
	}
	if gs.decoder != nil {
		gs.decoder.Close()
	}
	return nil
}
