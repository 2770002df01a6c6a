package session

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dendrascience/shelltree/tree"
)

// Render writes a transcript that, when replayed, rebuilds root.
// Every directory is entered once and listed once, in traversal order.
func Render(root *tree.Directory) string {
	var sb strings.Builder
	var cwd []string

	for dirPath, dir := range root.Walk() {
		target := splitPath(dirPath)
		if dirPath == tree.RootName {
			sb.WriteString(Prompt + " cd /\n")
		} else {
			common := 0
			for common < len(cwd) && common < len(target)-1 && cwd[common] == target[common] {
				common++
			}
			for range len(cwd) - common {
				sb.WriteString(Prompt + " cd ..\n")
			}
			for _, segment := range target[common:] {
				fmt.Fprintf(&sb, "%s cd %s\n", Prompt, segment)
			}
		}
		cwd = target
		writeListing(&sb, dir)
	}
	return sb.String()
}

func writeListing(sb *strings.Builder, dir *tree.Directory) {
	sb.WriteString(Prompt + " ls\n")
	for _, name := range slices.Sorted(maps.Keys(dir.Subdirectories)) {
		fmt.Fprintf(sb, "dir %s\n", name)
	}
	for _, name := range slices.Sorted(maps.Keys(dir.Files)) {
		fmt.Fprintf(sb, "%d %s\n", dir.Files[name], name)
	}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
