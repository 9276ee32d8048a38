package ldclump

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
	"github.com/carbocation/pfx"
)

// Genotype is a 2-bit hard call, in PLINK .bed order.
type Genotype uint8

const (
	HomRef  Genotype = 0b00
	Missing Genotype = 0b01
	Het     Genotype = 0b10
	HomAlt  Genotype = 0b11
)

// Dosage returns the number of alternate alleles, or -1 for Missing.
func (g Genotype) Dosage() int {
	switch g {
	case HomRef:
		return 0
	case Het:
		return 1
	case HomAlt:
		return 2
	}
	return -1
}

func (g Genotype) String() string {
	switch g {
	case HomRef:
		return "HomRef"
	case Het:
		return "Het"
	case HomAlt:
		return "HomAlt"
	case Missing:
		return "Missing"
	}
	return "Illegal genotype"
}

const (
	samplesPerWord = 32
	// lowBits has the low bit of every 2-bit sample slot set.
	lowBits uint64 = 0x5555555555555555
)

func wordsFor(nSamples int) int {
	return (nSamples + samplesPerWord - 1) / samplesPerWord
}

// PackedVector is one variant's genotype calls at 2 bits per sample, sample i
// in bits 2*(i%32) and 2*(i%32)+1 of word i/32. Bits past the last sample are
// ignored.
//
// A PackedVector is read-only once built; copies share the same words.
type PackedVector struct {
	words []uint64
	n     int
}

// NewPackedVector wraps words holding nSamples calls. The word count must be
// exactly ceil(nSamples/32).
func NewPackedVector(words []uint64, nSamples int) (PackedVector, error) {
	if nSamples < 0 {
		return PackedVector{}, pfx.Err(fmt.Errorf("negative sample count %d", nSamples))
	}
	if want := wordsFor(nSamples); len(words) != want {
		return PackedVector{}, pfx.Err(fmt.Errorf("%d samples need %d words, got %d", nSamples, want, len(words)))
	}
	return PackedVector{words: words, n: nSamples}, nil
}

// Pack encodes calls into a new PackedVector.
func Pack(calls []Genotype) PackedVector {
	words := make([]uint64, wordsFor(len(calls)))
	for i, g := range calls {
		words[i/samplesPerWord] |= uint64(g&3) << (2 * (i % samplesPerWord))
	}
	return PackedVector{words: words, n: len(calls)}
}

// PackedVectorFromBytes converts a byte row holding four calls per byte
// (first sample in the low bits, the .bed row layout) into a PackedVector.
func PackedVectorFromBytes(row []byte, nSamples int) (PackedVector, error) {
	if want := (nSamples + 3) / 4; len(row) < want {
		return PackedVector{}, pfx.Err(fmt.Errorf("%d samples need %d bytes, got %d", nSamples, want, len(row)))
	}

	nWords := wordsFor(nSamples)
	words := make([]uint64, nWords)
	buf := make([]byte, 8)
	for w := 0; w < nWords; w++ {
		start := w * 8
		end := min(start+8, (nSamples+3)/4)
		clear(buf)
		copy(buf, row[start:end])
		words[w] = binary.LittleEndian.Uint64(buf)
	}

	// Zero the slots past the last sample so that Words() is canonical.
	if tail := nSamples % samplesPerWord; tail != 0 {
		words[nWords-1] &= (uint64(1) << (2 * tail)) - 1
	}

	return PackedVector{words: words, n: nSamples}, nil
}

// NSamples returns the number of samples encoded.
func (v PackedVector) NSamples() int { return v.n }

// Words returns the packed words. They must not be modified.
func (v PackedVector) Words() []uint64 { return v.words }

// At returns the call of sample i.
func (v PackedVector) At(i int) Genotype {
	return Genotype((v.words[i/samplesPerWord] >> (2 * (i % samplesPerWord))) & 3)
}

// Genotypes decodes every call.
func (v PackedVector) Genotypes() []Genotype {
	out := make([]Genotype, 0, v.n)
	gr := newGenotypeReader(v)
	for {
		g, err := gr.ReadGenotype()
		if err == io.EOF {
			break
		}
		out = append(out, g)
	}
	return out
}

// genotypePlanes are per-class indicator sets in the 2-bit layout: for every
// included, non-missing sample exactly one of homRef/het/homAlt has the low
// bit of the sample's slot set.
type genotypePlanes struct {
	homRef *bitset.BitSet
	het    *bitset.BitSet
	homAlt *bitset.BitSet
}

func newGenotypePlanes(nWords int) genotypePlanes {
	return genotypePlanes{
		homRef: bitset.From(make([]uint64, nWords)),
		het:    bitset.From(make([]uint64, nWords)),
		homAlt: bitset.From(make([]uint64, nWords)),
	}
}

// splitPlanes fills p from v restricted to the samples set in include2 (the
// 2-bit expansion of a SampleMask). Missing calls land in no plane.
func splitPlanes(v PackedVector, include2 []uint64, p genotypePlanes) {
	homRef, het, homAlt := p.homRef.Words(), p.het.Words(), p.homAlt.Words()
	for i, w := range v.words {
		lo := w & lowBits
		hi := (w >> 1) & lowBits
		m := include2[i]
		homRef[i] = ^(lo | hi) & m
		het[i] = hi &^ lo & m
		homAlt[i] = lo & hi & m
	}
}
