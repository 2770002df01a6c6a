package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/dendrascience/shelltree/tree"
)

// Builder replays commands into a directory tree.
type Builder struct {
	root    *tree.Directory
	cwd     WorkingPath
	started bool
	applied int
	logger  *log.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger makes the builder report every command it applies at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder returns a builder holding an empty root directory.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		root:   tree.NewDirectory(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply executes one command. The first command must be `cd /`.
func (b *Builder) Apply(cmd Command) error {
	if !b.started {
		if cd, ok := cmd.(ChangeDirectory); !ok || cd.Target != "/" {
			return fmt.Errorf("%w: got %v", ErrMissingRoot, cmd)
		}
		b.started = true
	}

	switch c := cmd.(type) {
	case ChangeDirectory:
		if err := b.cwd.Change(c.Target); err != nil {
			return err
		}
		b.logger.Debug("cd", "target", c.Target, "cwd", b.cwd.Absolute())
	case ListDirectory:
		listing := c.Listing
		if listing == nil {
			listing = tree.NewDirectory()
		}
		b.logger.Debug("ls", "cwd", b.cwd.Absolute(), "files", len(listing.Files))
		b.root.Insert(b.cwd.String(), listing)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	b.applied++
	return nil
}

// Root returns the tree built so far.
func (b *Builder) Root() *tree.Directory {
	return b.root
}

// WorkingDirectory returns the current directory as an absolute path.
func (b *Builder) WorkingDirectory() string {
	return b.cwd.Absolute()
}

// Applied is the number of commands applied successfully.
func (b *Builder) Applied() int {
	return b.applied
}

// Build replays commands from the start of a session and returns the
// resulting tree. It stops at the first command that fails.
func Build(commands []Command, opts ...Option) (*tree.Directory, error) {
	b := NewBuilder(opts...)
	for i, cmd := range commands {
		if err := b.Apply(cmd); err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	if !b.started {
		return nil, fmt.Errorf("%w: empty session", ErrMissingRoot)
	}
	b.logger.Debug("session replayed", "commands", b.applied)
	return b.root, nil
}

// BuildTranscript parses a transcript and replays it.
func BuildTranscript(transcript string, opts ...Option) (*tree.Directory, error) {
	commands, err := Parse(transcript)
	if err != nil {
		return nil, err
	}
	return Build(commands, opts...)
}
