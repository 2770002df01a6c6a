package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dendrascience/shelltree/analysis"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates and returns the analyze subcommand for the shelltree CLI.
// It prints the two aggregate answers for a transcript.
func NewAnalyzeCmd() *cobra.Command {
	var (
		limits  = analysis.DefaultLimits()
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report small directories and the smallest directory to delete",
		Long: `Replay a transcript and answer two questions about it:

  1. The total size of all directories smaller than --threshold. Nested
     directories count once for every directory they are part of.
  2. The size of the smallest single directory that, if deleted, leaves at
     least --required bytes free on a disk of --capacity bytes.

FILE may be "-" to read the transcript from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			report, err := analysis.Analyze(root, limits)
			if errors.Is(err, analysis.ErrNoCandidate) {
				return fmt.Errorf("no directory frees %d bytes: %w", report.MinimumToFree, err)
			}
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), limits, report)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&limits.Threshold, "threshold", "t", analysis.DefaultThreshold, "Sum directories strictly smaller than this many bytes")
	cmd.Flags().Int64VarP(&limits.Capacity, "capacity", "c", analysis.DefaultCapacity, "Total disk capacity in bytes")
	cmd.Flags().Int64VarP(&limits.Required, "required", "r", analysis.DefaultRequired, "Free space needed in bytes")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON")

	return cmd
}

var labelStyle = lipgloss.NewStyle().Bold(true)

func printReport(w io.Writer, limits analysis.Limits, r analysis.Report) {
	fmt.Fprintf(w, "%s %d (%s of %s)\n", labelStyle.Render("Used:"), r.Used,
		humanize.IBytes(uint64(r.Used)), humanize.IBytes(uint64(limits.Capacity)))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render(fmt.Sprintf("Total size of directories smaller than %s:", humanize.Comma(limits.Threshold))), r.SumBelowThreshold)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Size of smallest directory of sufficient size:"), r.SmallestToDelete)
}
