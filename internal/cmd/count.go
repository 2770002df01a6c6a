package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the shelltree CLI.
// It provides directory and file counting for a reconstructed tree.
func NewCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE",
		Short: "Count directories and files in a transcript",
		Long: `Count the directories and files discovered by a transcript.

Every directory that was entered or listed is counted once, including the
root. Files are counted in the directory whose listing declared them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			stats := root.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Directories: %s\n", humanize.Comma(int64(stats.Directories)))
			fmt.Fprintf(out, "Files: %s\n", humanize.Comma(int64(stats.Files)))
			fmt.Fprintf(out, "Total size: %d (%s)\n", stats.Size, humanize.IBytes(uint64(stats.Size)))
			return nil
		},
	}
}
