package treefs

import (
	"context"
	"maps"
	"os"
	"slices"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/shelltree/tree"
)

// RootInode is the inode number of the mount root.
const RootInode = 1

// FS implements the read-only shelltree FUSE filesystem
type FS struct {
	root    *tree.Directory
	mounted time.Time
}

// ensure FS implements fs.FS
var _ fs.FS = (*FS)(nil)

// NewFS creates a filesystem serving root. The tree must not be modified
// while it is mounted.
func NewFS(root *tree.Directory) *FS {
	return &FS{
		root:    root,
		mounted: time.Now(),
	}
}

// Root returns the root directory node
func (f *FS) Root() (fs.Node, error) {
	return &Dir{fs: f, node: f.root, inode: RootInode}, nil
}

// Dir is a directory of the reconstructed tree
type Dir struct {
	fs    *FS
	node  *tree.Directory
	inode uint64
}

var (
	_ fs.Node               = (*Dir)(nil)
	_ fs.NodeStringLookuper = (*Dir)(nil)
	_ fs.HandleReadDirAller = (*Dir)(nil)
)

// Attr returns directory attributes
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = d.inode
	a.Mode = os.ModeDir | 0o555
	a.Size = uint64(d.node.Size())
	a.Nlink = uint32(2 + len(d.node.Subdirectories))
	a.Mtime = d.fs.mounted
	a.Ctime = d.fs.mounted
	a.Atime = d.fs.mounted
	return nil
}

// Lookup resolves a child directory or file by name. Directories win when a
// name is used for both.
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	inode := fs.GenerateDynamicInode(d.inode, name)
	if child, ok := d.node.Subdirectories[name]; ok {
		return &Dir{fs: d.fs, node: child, inode: inode}, nil
	}
	if size, ok := d.node.Files[name]; ok {
		return &File{fs: d.fs, name: name, size: size, inode: inode}, nil
	}
	return nil, syscall.ENOENT
}

// ReadDirAll lists directories then files, each in name order
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	dirents := make([]fuse.Dirent, 0, len(d.node.Subdirectories)+len(d.node.Files))
	for _, name := range slices.Sorted(maps.Keys(d.node.Subdirectories)) {
		dirents = append(dirents, fuse.Dirent{
			Inode: fs.GenerateDynamicInode(d.inode, name),
			Name:  name,
			Type:  fuse.DT_Dir,
		})
	}
	for _, name := range slices.Sorted(maps.Keys(d.node.Files)) {
		if _, shadowed := d.node.Subdirectories[name]; shadowed {
			continue
		}
		dirents = append(dirents, fuse.Dirent{
			Inode: fs.GenerateDynamicInode(d.inode, name),
			Name:  name,
			Type:  fuse.DT_File,
		})
	}
	return dirents, nil
}

// File is a file of the reconstructed tree. Its content is all zeros.
type File struct {
	fs    *FS
	name  string
	size  int64
	inode uint64
}

var (
	_ fs.Node         = (*File)(nil)
	_ fs.HandleReader = (*File)(nil)
)

// Attr returns file attributes
func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = f.inode
	a.Mode = 0o444
	a.Size = uint64(f.size)
	a.Nlink = 1
	a.Mtime = f.fs.mounted
	a.Ctime = f.fs.mounted
	a.Atime = f.fs.mounted
	return nil
}

// Read fills the response with zeros for the part of the request that lies
// within the file.
func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	if req.Offset < 0 {
		return syscall.EINVAL
	}
	if req.Offset >= f.size {
		resp.Data = resp.Data[:0]
		return nil
	}
	n := min(int64(req.Size), f.size-req.Offset)
	resp.Data = make([]byte, n)
	return nil
}
