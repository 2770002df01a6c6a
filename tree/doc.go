// Package tree models a directory hierarchy reconstructed from the output of
// a shell session.
//
// A Directory owns its child directories by name and its files by name and
// size. Trees are grown incrementally with Insert and Merge as listings are
// discovered, and are read back with Size and the lazy Traverse and Walk
// iterators once construction is complete.
//
// Key Components:
//   - Directory: the recursive node type
//   - ParseListing: turns raw `ls` output into an unattached Directory fragment
//   - Traverse/Walk: pre-order, stack-based iteration over every node
//
// Directory values are not safe for concurrent mutation. A finished tree may
// be traversed from several goroutines at once since traversal never writes.
package tree
