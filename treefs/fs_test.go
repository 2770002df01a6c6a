package treefs

import (
	"context"
	"os"
	"syscall"
	"testing"

	"bazil.org/fuse"
	"github.com/dendrascience/shelltree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *tree.Directory {
	t.Helper()
	root := tree.NewDirectory()
	require.NoError(t, root.AddFile("b.txt", 14848514))
	a := root.Subdirectory("a")
	require.NoError(t, a.AddFile("f", 29116))
	require.NoError(t, a.AddFile("g", 2557))
	a.Subdirectory("e")
	return root
}

func rootDir(t *testing.T) *Dir {
	t.Helper()
	node, err := NewFS(testTree(t)).Root()
	require.NoError(t, err)
	dir, ok := node.(*Dir)
	require.True(t, ok)
	return dir
}

func TestRootAttr(t *testing.T) {
	var attr fuse.Attr
	require.NoError(t, rootDir(t).Attr(context.Background(), &attr))

	assert.Equal(t, uint64(RootInode), attr.Inode)
	assert.True(t, attr.Mode.IsDir())
	assert.Equal(t, os.FileMode(0o555), attr.Mode.Perm())
	assert.Equal(t, uint64(14848514+29116+2557), attr.Size)
}

func TestReadDirAll(t *testing.T) {
	dirents, err := rootDir(t).ReadDirAll(context.Background())
	require.NoError(t, err)
	require.Len(t, dirents, 2)

	assert.Equal(t, "a", dirents[0].Name)
	assert.Equal(t, fuse.DT_Dir, dirents[0].Type)
	assert.Equal(t, "b.txt", dirents[1].Name)
	assert.Equal(t, fuse.DT_File, dirents[1].Type)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	root := rootDir(t)

	node, err := root.Lookup(ctx, "a")
	require.NoError(t, err)
	a, ok := node.(*Dir)
	require.True(t, ok)

	node, err = a.Lookup(ctx, "f")
	require.NoError(t, err)
	f, ok := node.(*File)
	require.True(t, ok)

	var attr fuse.Attr
	require.NoError(t, f.Attr(ctx, &attr))
	assert.Equal(t, uint64(29116), attr.Size)
	assert.Equal(t, os.FileMode(0o444), attr.Mode)

	_, err = root.Lookup(ctx, "missing")
	assert.Equal(t, syscall.ENOENT, err)
}

func TestLookup_StableInodes(t *testing.T) {
	ctx := context.Background()
	root := rootDir(t)

	first, err := root.Lookup(ctx, "a")
	require.NoError(t, err)
	second, err := root.Lookup(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, first.(*Dir).inode, second.(*Dir).inode)

	dirents, err := root.ReadDirAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.(*Dir).inode, dirents[0].Inode)
}

func TestFileRead(t *testing.T) {
	f := &File{fs: NewFS(tree.NewDirectory()), name: "f", size: 10}

	tests := []struct {
		name   string
		offset int64
		size   int
		want   int
	}{
		{"whole file", 0, 4096, 10},
		{"partial", 2, 5, 5},
		{"tail", 8, 100, 2},
		{"past end", 10, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &fuse.ReadResponse{}
			err := f.Read(context.Background(), &fuse.ReadRequest{Offset: tt.offset, Size: tt.size}, resp)
			require.NoError(t, err)
			assert.Len(t, resp.Data, tt.want)
			for _, b := range resp.Data {
				assert.Zero(t, b)
			}
		})
	}
}
