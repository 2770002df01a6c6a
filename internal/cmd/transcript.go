package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dendrascience/shelltree/session"
	"github.com/dendrascience/shelltree/tree"
	"github.com/spf13/cobra"
)

// stdioPath in place of a file name selects standard input or output.
const stdioPath = "-"

// newLogger returns the logger for cmd, at debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "shelltree"})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadTree reads the transcript at path and replays it.
func loadTree(cmd *cobra.Command, path string) (*tree.Directory, error) {
	logger := newLogger(cmd)

	var (
		data []byte
		err  error
	)
	if path == stdioPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	root, err := session.BuildTranscript(string(data), session.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("replaying %s: %w", path, err)
	}
	logger.Debug("tree rebuilt", "path", path, "size", root.Size())
	return root, nil
}
