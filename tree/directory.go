package tree

import (
	"fmt"
	"strings"
)

// Directory is one node of a reconstructed directory tree.
// Each child directory and each file is owned by exactly one Directory.
type Directory struct {
	Subdirectories map[string]*Directory `json:"subdirectories"` // child directories by name
	Files          map[string]int64      `json:"files"`          // file sizes in bytes by name
}

// Stats summarises a subtree.
type Stats struct {
	Directories int   `json:"directories"` // number of directories, including the subtree root
	Files       int   `json:"files"`       // number of files
	Size        int64 `json:"size"`        // total size of all files
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		Subdirectories: make(map[string]*Directory),
		Files:          make(map[string]int64),
	}
}

// AddFile records a file in d, replacing any earlier size recorded for name.
func (d *Directory) AddFile(name string, size int64) error {
	if size < 0 {
		return fmt.Errorf("%w: %s has size %d", ErrNegativeSize, name, size)
	}
	if d.Files == nil {
		d.Files = make(map[string]int64)
	}
	d.Files[name] = size
	return nil
}

// Subdirectory returns the child directory called name, creating an empty one
// if it does not exist yet.
func (d *Directory) Subdirectory(name string) *Directory {
	if d.Subdirectories == nil {
		d.Subdirectories = make(map[string]*Directory)
	}
	child, ok := d.Subdirectories[name]
	if !ok {
		child = NewDirectory()
		d.Subdirectories[name] = child
	}
	return child
}

// Lookup resolves a slash separated path relative to d.
// It returns false if any segment of the path does not exist.
func (d *Directory) Lookup(path string) (*Directory, bool) {
	current := d
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		next, ok := current.Subdirectories[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Size returns the total size of all files in the subtree rooted at d.
// The value is recomputed on every call.
func (d *Directory) Size() int64 {
	var total int64
	for _, size := range d.Files {
		total += size
	}
	for _, child := range d.Subdirectories {
		total += child.Size()
	}
	return total
}

// Insert merges fragment into the directory found at path below d.
//
// An empty path merges fragment into d itself. Otherwise the first segment
// of path is looked up, created empty if it is missing, and the remainder of
// the path is inserted into it. Empty segments are ignored, so "a//b" and
// "/a/b" are the same as "a/b".
func (d *Directory) Insert(path string, fragment *Directory) {
	head, tail, _ := strings.Cut(path, "/")
	for head == "" && tail != "" {
		head, tail, _ = strings.Cut(tail, "/")
	}
	if head == "" {
		d.Merge(fragment)
		return
	}
	d.Subdirectory(head).Insert(tail, fragment)
}

// Merge absorbs the contents of other into d.
//
// Files from other replace files of the same name in d. Child directories
// present in both are merged recursively so that grandchildren discovered
// earlier are kept; child directories only present in other are adopted
// as is. other must not be used after the call, and must not be a
// descendant of d. Merging d or one of its ancestors into d is a no-op.
func (d *Directory) Merge(other *Directory) {
	if other == nil {
		return
	}
	for _, node := range other.Traverse() {
		if node == d {
			return
		}
	}
	d.merge(other)
}

func (d *Directory) merge(other *Directory) {
	for name, size := range other.Files {
		if d.Files == nil {
			d.Files = make(map[string]int64, len(other.Files))
		}
		d.Files[name] = size
	}
	for name, child := range other.Subdirectories {
		if existing, ok := d.Subdirectories[name]; ok {
			existing.merge(child)
			continue
		}
		if d.Subdirectories == nil {
			d.Subdirectories = make(map[string]*Directory, len(other.Subdirectories))
		}
		d.Subdirectories[name] = child
	}
}

// Stats counts the directories and files below d.
func (d *Directory) Stats() Stats {
	var s Stats
	for _, node := range d.Traverse() {
		s.Directories++
		s.Files += len(node.Files)
		for _, size := range node.Files {
			s.Size += size
		}
	}
	return s
}
