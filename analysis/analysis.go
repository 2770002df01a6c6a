// Package analysis answers aggregate size questions about a reconstructed
// directory tree.
package analysis

import (
	"fmt"

	"github.com/dendrascience/shelltree/tree"
)

// Default limits used by the analyze command.
const (
	DefaultThreshold int64 = 100_000
	DefaultCapacity  int64 = 70_000_000
	DefaultRequired  int64 = 30_000_000
)

// Limits are the caller supplied bounds for Analyze.
type Limits struct {
	Threshold int64 `json:"threshold"` // directories strictly smaller than this are summed
	Capacity  int64 `json:"capacity"`  // total disk size
	Required  int64 `json:"required"`  // free space needed after deleting one directory
}

// Report holds the results of Analyze.
type Report struct {
	Used              int64 `json:"used"`
	Free              int64 `json:"free"`
	SumBelowThreshold int64 `json:"sum_below_threshold"`
	MinimumToFree     int64 `json:"minimum_to_free"`
	SmallestToDelete  int64 `json:"smallest_to_delete"`
}

// DefaultLimits returns the limits used when no flags are given.
func DefaultLimits() Limits {
	return Limits{
		Threshold: DefaultThreshold,
		Capacity:  DefaultCapacity,
		Required:  DefaultRequired,
	}
}

// Validate checks that the limits are usable.
func (l Limits) Validate() error {
	switch {
	case l.Threshold < 0:
		return fmt.Errorf("%w: threshold %d is negative", ErrInvalidLimits, l.Threshold)
	case l.Capacity <= 0:
		return fmt.Errorf("%w: capacity %d must be positive", ErrInvalidLimits, l.Capacity)
	case l.Required < 0 || l.Required > l.Capacity:
		return fmt.Errorf("%w: required %d must be between 0 and capacity %d", ErrInvalidLimits, l.Required, l.Capacity)
	}
	return nil
}

// MinimumToFree is how much must be deleted when used bytes are occupied so
// that Required bytes become free. It may be zero or negative if enough
// space is already free.
func (l Limits) MinimumToFree(used int64) int64 {
	return used - (l.Capacity - l.Required)
}

// SumBelow adds up the size of every directory whose size is strictly less
// than threshold. Nested directories are counted at every level they appear.
func SumBelow(root *tree.Directory, threshold int64) int64 {
	var total int64
	for _, dir := range root.Traverse() {
		if size := dir.Size(); size < threshold {
			total += size
		}
	}
	return total
}

// SmallestAtLeast returns the size of the smallest directory whose size is
// at least minimum. ErrNoCandidate is returned when there is none, which is
// distinct from a valid zero result.
func SmallestAtLeast(root *tree.Directory, minimum int64) (int64, error) {
	var (
		best  int64
		found bool
	)
	for _, dir := range root.Traverse() {
		size := dir.Size()
		if size < minimum {
			continue
		}
		if !found || size < best {
			best, found = size, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: need at least %d", ErrNoCandidate, minimum)
	}
	return best, nil
}

// Analyze computes both aggregates for root under the given limits.
func Analyze(root *tree.Directory, limits Limits) (Report, error) {
	if err := limits.Validate(); err != nil {
		return Report{}, err
	}
	used := root.Size()
	r := Report{
		Used:              used,
		Free:              limits.Capacity - used,
		SumBelowThreshold: SumBelow(root, limits.Threshold),
		MinimumToFree:     limits.MinimumToFree(used),
	}
	smallest, err := SmallestAtLeast(root, r.MinimumToFree)
	if err != nil {
		return r, err
	}
	r.SmallestToDelete = smallest
	return r, nil
}
