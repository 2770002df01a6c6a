package cmd

import (
	"github.com/dendrascience/shelltree/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the shelltree CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shelltree",
		Short: "shelltree - Rebuild and measure directory trees from shell transcripts",
		Long: `shelltree rebuilds a directory tree from a recorded shell session.

The transcript is a sequence of "$ cd <dir>" and "$ ls" commands, each ls
followed by its output ("<size> <name>" for files, "dir <name>" for
directories). shelltree replays the session and reports on the sizes of the
directories it discovered.

Use subcommands to perform different operations:
  - analyze: Sum of small directories and the smallest directory to delete
  - du: List every directory with its total size
  - count: Count directories and files
  - mount: Mount the reconstructed tree read-only
  - seed: Generate a synthetic transcript`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupAnalysis := "analysis"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupAnalysis,
		Title: "Analysis Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every replayed command")

	analyzeCmd := NewAnalyzeCmd()
	duCmd := NewDuCmd()
	countCmd := NewCountCmd()
	mountCmd := NewMountCmd()
	seedCmd := NewSeedCmd()

	analyzeCmd.GroupID = groupAnalysis
	duCmd.GroupID = groupAnalysis
	countCmd.GroupID = groupAnalysis
	mountCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(duCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
