package ldclump

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateVariant is returned when a variant name is loaded twice.
	ErrDuplicateVariant = errors.New("duplicate variant")

	// ErrUnknownVariant is returned when a lookup names a variant that was
	// never loaded.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrSampleCountMismatch is the sentinel matched by
	// *SampleCountMismatchError.
	ErrSampleCountMismatch = errors.New("sample count mismatch")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// SampleCountMismatchError indicates that a packed genotype vector declares a
// different number of samples than the shared sample-inclusion mask. This is
// a pipeline bug and is never absorbed into a numeric result.
type SampleCountMismatchError struct {
	Expected int
	Actual   int
}

func (e *SampleCountMismatchError) Error() string {
	return fmt.Sprintf("sample count mismatch: mask has %d samples, vector has %d", e.Expected, e.Actual)
}

// Is lets errors.Is(err, ErrSampleCountMismatch) match.
func (e *SampleCountMismatchError) Is(target error) bool {
	return target == ErrSampleCountMismatch
}

func checkSampleCount(mask *SampleMask, v PackedVector) error {
	if mask.NSamples() != v.NSamples() {
		return &SampleCountMismatchError{Expected: mask.NSamples(), Actual: v.NSamples()}
	}
	return nil
}
