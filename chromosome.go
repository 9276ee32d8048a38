package ldclump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// PLINK numbering for the non-autosomal chromosomes.
const (
	ChromosomeX  = 23
	ChromosomeY  = 24
	ChromosomeXY = 25
	ChromosomeMT = 26
)

// ChromosomeName takes the integer chromosome code and returns its standard
// string translation. Codes that do not name a chromosome yield "NA".
func ChromosomeName(chr int) string {
	switch {
	case chr >= 1 && chr <= 22:
		return strconv.Itoa(chr)
	case chr == ChromosomeX:
		return "X"
	case chr == ChromosomeY:
		return "Y"
	case chr == ChromosomeXY:
		return "XY"
	case chr == ChromosomeMT:
		return "MT"
	}

	return "NA"
}

// ParseChromosome maps a chromosome label ("1", "chr1", "X", "chrMT", ...) to
// its integer code.
func ParseChromosome(label string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	s = strings.TrimPrefix(s, "CHR")

	switch s {
	case "X":
		return ChromosomeX, nil
	case "Y":
		return ChromosomeY, nil
	case "XY":
		return ChromosomeXY, nil
	case "MT", "M":
		return ChromosomeMT, nil
	}

	chr, err := strconv.Atoi(s)
	if err != nil {
		return 0, pfx.Err(fmt.Errorf("%q is not a chromosome label", label))
	}
	if chr < 1 || chr > ChromosomeMT {
		return 0, pfx.Err(fmt.Errorf("chromosome code %d is out of range", chr))
	}

	return chr, nil
}
