// Package session replays a recorded shell session to rebuild the directory
// tree it explored.
//
// A transcript is a sequence of `$ cd <target>` and `$ ls` commands, each
// `ls` followed by its output. Parse turns the transcript into Commands and
// Builder applies them in order, tracking the working directory and
// inserting every listing into a tree.Directory at the current path.
//
// Transcripts are assumed to come from a real terminal. Anything that does
// not look like one (output before the first prompt, an unknown command, a
// session that does not begin with `cd /`, or `cd ..` at the root) is
// reported as an error and construction stops.
package session
