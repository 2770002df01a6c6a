package session

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dendrascience/shelltree/tree"
)

// Prompt separates commands in a transcript.
const Prompt = "$"

// Command is one step of a shell session: either a ChangeDirectory or a
// ListDirectory. The set is closed; use a type switch to dispatch.
type Command interface {
	isCommand()
}

// ChangeDirectory is `cd <Target>`.
type ChangeDirectory struct {
	Target string
}

// ListDirectory is `ls` together with its parsed output.
type ListDirectory struct {
	Listing *tree.Directory
}

func (ChangeDirectory) isCommand() {}
func (ListDirectory) isCommand()   {}

func (c ChangeDirectory) String() string {
	return "cd " + c.Target
}

func (c ListDirectory) String() string {
	if c.Listing == nil {
		return "ls"
	}
	return fmt.Sprintf("ls (%d files)", len(c.Listing.Files))
}

// Tokenize splits a transcript into command tokens, one per prompt, with
// surrounding whitespace removed. Empty prompts are dropped.
func Tokenize(transcript string) ([]string, error) {
	parts := strings.Split(transcript, Prompt)
	if strings.TrimSpace(parts[0]) != "" {
		return nil, ErrLeadingOutput
	}
	tokens := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens, nil
}

// ParseCommand parses a single token produced by Tokenize.
func ParseCommand(token string) (Command, error) {
	name, rest := token, ""
	if i := strings.IndexFunc(token, unicode.IsSpace); i >= 0 {
		name, rest = token[:i], strings.TrimSpace(token[i:])
	}

	switch name {
	case "cd":
		// cd prints nothing, so a second line means the token is not a cd.
		if rest == "" || strings.Contains(rest, "\n") {
			return nil, fmt.Errorf("%w: %q", ErrMalformedCommand, token)
		}
		return ChangeDirectory{Target: rest}, nil
	case "ls":
		line, output, _ := strings.Cut(token, "\n")
		if strings.TrimSpace(line) != "ls" {
			return nil, fmt.Errorf("%w: unsupported ls arguments in %q", ErrMalformedCommand, line)
		}
		listing, err := tree.ParseListing(output)
		if err != nil {
			return nil, err
		}
		return ListDirectory{Listing: listing}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

// Parse tokenizes a transcript and parses every command in it.
func Parse(transcript string) ([]Command, error) {
	tokens, err := Tokenize(transcript)
	if err != nil {
		return nil, err
	}
	commands := make([]Command, 0, len(tokens))
	for i, token := range tokens {
		cmd, err := ParseCommand(token)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
