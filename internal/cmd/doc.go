// Package cmd provides the command-line interface implementation for shelltree.
//
// This package contains all the subcommand implementations for the shelltree CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - analyze: Aggregate size answers for a transcript
//   - du: Per-directory size listing
//   - count: Directory and file counts
//   - mount: Read-only FUSE view of the reconstructed tree
//   - seed: Synthetic transcript generation
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. Commands that read a transcript share loadTree,
// which replays it through the session package.
package cmd
