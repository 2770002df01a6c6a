// Package main provides the shelltree command-line interface.
//
// shelltree rebuilds a directory tree from a recorded shell session made of
// "$ cd" and "$ ls" commands and reports on the sizes of the directories it
// discovered.
//
// The main binary supports multiple subcommands:
//   - analyze: Sum of small directories and the smallest directory to delete
//   - du: List every directory with its total size
//   - count: Count directories and files
//   - mount: Mount the reconstructed tree read-only via FUSE
//   - seed: Generate a synthetic transcript
package main
