package tree

import (
	"iter"
	"maps"
	"path"
	"slices"
)

// RootName is the name Traverse reports for the directory it starts from.
const RootName = "/"

// cursor tracks the children of one directory that are still to be visited.
type cursor struct {
	dir   *Directory
	path  string
	names []string
	next  int
}

func newCursor(dir *Directory, dirPath string) *cursor {
	return &cursor{
		dir:   dir,
		path:  dirPath,
		names: slices.Sorted(maps.Keys(dir.Subdirectories)),
	}
}

// Traverse yields every directory of the tree rooted at d exactly once,
// together with its name. The root is reported as RootName.
//
// Directories are visited depth first in pre-order: a directory is always
// yielded before any of its descendants. Siblings are visited in name order,
// but callers should only rely on the parent-before-descendant guarantee.
// Traversal uses an explicit stack rather than recursion and never modifies
// the tree, so it may be repeated freely once the tree is complete.
func (d *Directory) Traverse() iter.Seq2[string, *Directory] {
	return func(yield func(string, *Directory) bool) {
		for _, s := range d.walk() {
			if !yield(s.name, s.dir) {
				return
			}
		}
	}
}

// Walk is like Traverse but yields the slash separated path of each
// directory relative to d, starting with "/" for d itself.
func (d *Directory) Walk() iter.Seq2[string, *Directory] {
	return func(yield func(string, *Directory) bool) {
		for dirPath, s := range d.walk() {
			if !yield(dirPath, s.dir) {
				return
			}
		}
	}
}

type step struct {
	name string
	dir  *Directory
}

func (d *Directory) walk() iter.Seq2[string, step] {
	return func(yield func(string, step) bool) {
		if !yield(RootName, step{name: RootName, dir: d}) {
			return
		}
		stack := []*cursor{newCursor(d, RootName)}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next == len(top.names) {
				stack = stack[:len(stack)-1]
				continue
			}
			name := top.names[top.next]
			top.next++
			child := top.dir.Subdirectories[name]
			childPath := path.Join(top.path, name)
			if !yield(childPath, step{name: name, dir: child}) {
				return
			}
			stack = append(stack, newCursor(child, childPath))
		}
	}
}
