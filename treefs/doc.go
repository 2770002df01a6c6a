// Package treefs exposes a reconstructed directory tree as a read-only FUSE
// filesystem.
//
// Directories and file names mirror the tree exactly. File sizes are the
// sizes recorded in the session transcript; since no contents were ever
// observed, reads return zero bytes up to that size. Any attempt to create or
// modify entries fails because the mount is read-only.
//
// The main entry point is NewFS() which wraps a tree.Directory in a value
// that can be served with the bazil.org/fuse library.
package treefs
