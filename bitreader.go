package ldclump

import (
	"io"
)

// genotypeReader walks a PackedVector one 2-bit call at a time, low slot
// first within each word.
type genotypeReader struct {
	words  []uint64
	n      int
	read   int
	word   uint64
	offset uint
}

func newGenotypeReader(v PackedVector) *genotypeReader {
	return &genotypeReader{words: v.words, n: v.n}
}

func (r *genotypeReader) ReadGenotype() (Genotype, error) {
	if r.read >= r.n {
		return Missing, io.EOF
	}
	if r.offset == 0 {
		r.word = r.words[r.read/samplesPerWord]
	}
	g := Genotype((r.word >> r.offset) & 3)
	r.offset += 2
	if r.offset == 2*samplesPerWord {
		r.offset = 0
	}
	r.read++
	return g, nil
}
