package cmd

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/dendrascience/shelltree/session"
	"github.com/dendrascience/shelltree/tree"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var errInvalidSeed = errors.New("invalid seed parameters")

var fileExtensions = []string{"", ".txt", ".dat", ".log", ".lst", ".ext"}

// NewSeedCmd creates and returns the seed subcommand for the shelltree CLI.
// It generates a transcript of a random directory tree.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		dirCount   int
		fileCount  int
		maxSize    int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a transcript of a random directory tree",
		Long: `Generate a shell transcript for testing shelltree.

A random tree with --dirs directories (besides the root) and --files files
is built, each directory attached to a random earlier directory and each
file placed in a random directory with a size up to --max-size. Names are
taken from random UUIDs. The transcript enters and lists every directory
exactly once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			root, err := generateTree(dirCount, fileCount, maxSize)
			if err != nil {
				return err
			}
			transcript := session.Render(root)

			if outputPath == stdioPath {
				_, err = fmt.Fprint(cmd.OutOrStdout(), transcript)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(outputPath, []byte(transcript), 0644); err != nil {
				return err
			}
			stats := root.Stats()
			logger.Info("wrote transcript", "path", outputPath, "directories", stats.Directories, "files", stats.Files, "size", stats.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", `Path to output transcript, "-" for stdout (required)`)
	cmd.Flags().IntVarP(&dirCount, "dirs", "d", 100, "Number of directories to generate")
	cmd.Flags().IntVarP(&fileCount, "files", "f", 1000, "Number of files to generate")
	cmd.Flags().Int64Var(&maxSize, "max-size", 300000, "Largest file size in bytes")

	cmd.MarkFlagRequired("output")

	return cmd
}

// generateTree builds a random tree with dirCount directories below the
// root and fileCount files.
func generateTree(dirCount, fileCount int, maxSize int64) (*tree.Directory, error) {
	if dirCount < 0 || fileCount < 0 || maxSize < 1 {
		return nil, fmt.Errorf("%w: dirs=%d files=%d max-size=%d", errInvalidSeed, dirCount, fileCount, maxSize)
	}

	root := tree.NewDirectory()
	dirs := []*tree.Directory{root}
	for range dirCount {
		parent := dirs[randInt(int64(len(dirs)))]
		dirs = append(dirs, parent.Subdirectory(randomName()))
	}
	for range fileCount {
		dir := dirs[randInt(int64(len(dirs)))]
		name := randomName() + fileExtensions[randInt(int64(len(fileExtensions)))]
		if err := dir.AddFile(name, randInt(maxSize)+1); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func randomName() string {
	return uuid.New().String()[:8]
}

func randInt(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		panic(err)
	}
	return v.Int64()
}
