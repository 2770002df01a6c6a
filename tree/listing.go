package tree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseListing builds an unattached Directory from the output of one `ls`.
//
// Lines that start with a decimal digit are file entries of the form
// "<size> <name>". Every other non-blank line, such as "dir name", only
// announces a subdirectory and is skipped: directories enter the tree when
// a listing is inserted at their path.
func ParseListing(text string) (*Directory, error) {
	fragment := NewDirectory()
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !isDigit(line[0]) {
			continue
		}
		sizeField, name := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			sizeField, name = line[:i], strings.TrimSpace(line[i:])
		}
		if name == "" {
			return nil, fmt.Errorf("%w: line %d %q has no file name", ErrMalformedListing, n+1, line)
		}
		size, err := strconv.ParseInt(sizeField, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %w", ErrMalformedListing, n+1, line, err)
		}
		if err := fragment.AddFile(name, size); err != nil {
			return nil, err
		}
	}
	return fragment, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
