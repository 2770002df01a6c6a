package cmd

import (
	"cmp"
	"fmt"
	"io"
	"path"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dendrascience/shelltree/tree"
	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// usage is the total size of one directory.
type usage struct {
	Path string
	Size int64
}

// NewDuCmd creates and returns the du subcommand for the shelltree CLI.
// It lists directories of a reconstructed tree by total size.
func NewDuCmd() *cobra.Command {
	var (
		match string
		top   int
		bytes bool
	)

	cmd := &cobra.Command{
		Use:   "du FILE",
		Short: "List directories by total size",
		Long: `List every directory discovered by a transcript with its total size,
largest first. Directory names are coloured by a hash of their name so the
same name has the same colour across runs.

--match restricts the listing to paths matching a glob such as "/a/**" or
"**/*.d"; "*" does not cross "/" while "**" does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var matcher glob.Glob
			if match != "" {
				g, err := glob.Compile(match, '/')
				if err != nil {
					return fmt.Errorf("invalid --match pattern %q: %w", match, err)
				}
				matcher = g
			}

			root, err := loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			entries := collectUsage(root, matcher)
			if top > 0 && len(entries) > top {
				entries = entries[:top]
			}
			printUsage(cmd.OutOrStdout(), entries, bytes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "Only list directories whose path matches this glob")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Only list the N largest directories (0 lists all)")
	cmd.Flags().BoolVarP(&bytes, "bytes", "b", false, "Print exact byte counts instead of human readable sizes")

	return cmd
}

// collectUsage sizes every directory of root accepted by matcher, largest
// first. A nil matcher accepts everything.
func collectUsage(root *tree.Directory, matcher glob.Glob) []usage {
	var entries []usage
	for p, dir := range root.Walk() {
		if matcher != nil && !matcher.Match(p) {
			continue
		}
		entries = append(entries, usage{Path: p, Size: dir.Size()})
	}
	slices.SortStableFunc(entries, func(a, b usage) int {
		return cmp.Or(cmp.Compare(b.Size, a.Size), cmp.Compare(a.Path, b.Path))
	})
	return entries
}

func printUsage(w io.Writer, entries []usage, exact bool) {
	for _, e := range entries {
		size := humanize.IBytes(uint64(e.Size))
		if exact {
			size = strconv.FormatInt(e.Size, 10)
		}
		fmt.Fprintf(w, "%12s  %s\n", size, colorize(e.Path))
	}
}

// colorize styles p with a 256-colour foreground derived from its base name.
func colorize(p string) string {
	h := colorhash.HashString(path.Base(p)) % 216
	if h < 0 {
		h = -h
	}
	color := lipgloss.Color(strconv.Itoa(int(h) + 16))
	return lipgloss.NewStyle().Foreground(color).Render(p)
}
