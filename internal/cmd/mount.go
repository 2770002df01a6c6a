package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/charmbracelet/log"
	"github.com/dendrascience/shelltree/treefs"
	"github.com/dendrascience/shelltree/version"
	"github.com/spf13/cobra"
)

var errNotDirectory = errors.New("mountpoint is not a directory")

// NewMountCmd creates and returns the mount subcommand for the shelltree CLI.
// It serves a reconstructed tree as a read-only FUSE filesystem.
func NewMountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mount FILE MOUNTPOINT",
		Short: "Mount the reconstructed tree read-only",
		Long: `Mount the directory tree rebuilt from FILE at MOUNTPOINT.

Files appear with the sizes recorded in the transcript and read as zeros.
The mount is read-only. Interrupt the command to unmount.`,
		Args: cobra.ExactArgs(2),
		RunE: runMount,
	}
}

// checkMountpoint verifies that path exists and is a directory.
func checkMountpoint(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errNotDirectory, path)
	}
	return nil
}

func runMount(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	transcriptPath := args[0]
	mountpoint := args[1]

	if err := checkMountpoint(mountpoint); err != nil {
		return err
	}
	root, err := loadTree(cmd, transcriptPath)
	if err != nil {
		return err
	}

	filesystem := treefs.NewFS(root)

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("shelltree"),
		fuse.Subtype("shelltree"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	served := make(chan struct{})
	go unmountOnInterrupt(sigChan, served, func() error { return fuse.Unmount(mountpoint) }, logger)

	logger.Info("mounted", "version", version.GetVersion(), "mountpoint", mountpoint, "transcript", transcriptPath)
	err = fs.Serve(c, filesystem)
	close(served)
	if err != nil {
		return err
	}
	logger.Info("Shutdown complete")
	return nil
}

// unmountOnInterrupt calls unmount when an interrupt arrives on sigChan. It
// returns without unmounting once served is closed.
func unmountOnInterrupt(sigChan <-chan os.Signal, served <-chan struct{}, unmount func() error, logger *log.Logger) {
	select {
	case <-sigChan:
		logger.Info("Received interrupt signal, unmounting...")
		if err := unmount(); err != nil {
			logger.Error("unmount failed", "err", err)
		}
	case <-served:
	}
}
