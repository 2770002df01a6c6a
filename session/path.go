package session

import (
	"fmt"
	"slices"
	"strings"
)

// WorkingPath is the current directory during a replay, stored as the list
// of segments below the root.
type WorkingPath struct {
	segments []string
}

// Change applies a cd target. "/" returns to the root, ".." goes up one
// level and any other name descends into that child. Targets containing
// slashes are applied one segment at a time; a leading slash starts from
// the root. p is left unchanged when Change returns an error.
func (p *WorkingPath) Change(target string) error {
	next := slices.Clone(p.segments)
	if strings.HasPrefix(target, "/") {
		next = next[:0]
	}
	for _, segment := range strings.Split(target, "/") {
		switch segment {
		case "", ".":
		case "..":
			if len(next) == 0 {
				return fmt.Errorf("%w: cd %s", ErrAboveRoot, target)
			}
			next = next[:len(next)-1]
		default:
			next = append(next, segment)
		}
	}
	p.segments = next
	return nil
}

// String returns the path relative to the root, "" at the root itself.
func (p WorkingPath) String() string {
	return strings.Join(p.segments, "/")
}

// Absolute returns the path with a leading slash, "/" at the root.
func (p WorkingPath) Absolute() string {
	return "/" + p.String()
}

// Depth is the number of segments below the root.
func (p WorkingPath) Depth() int {
	return len(p.segments)
}
