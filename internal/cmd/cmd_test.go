package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/shelltree/analysis"
	"github.com/dendrascience/shelltree/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleTranscript = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create transcript: %v", err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyze(t *testing.T) {
	out, _, err := execute(t, "", "analyze", writeTranscript(t, exampleTranscript))
	require.NoError(t, err)
	assert.Contains(t, out, "Total size of directories smaller than 100,000:")
	assert.Contains(t, out, "95437")
	assert.Contains(t, out, "Size of smallest directory of sufficient size:")
	assert.Contains(t, out, "24933642")
}

func TestAnalyze_JSONFromStdin(t *testing.T) {
	out, _, err := execute(t, exampleTranscript, "analyze", "--json", "-")
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, int64(48381165), report.Used)
	assert.Equal(t, int64(95437), report.SumBelowThreshold)
	assert.Equal(t, int64(24933642), report.SmallestToDelete)
}

func TestAnalyze_CustomLimits(t *testing.T) {
	out, _, err := execute(t, "", "analyze", "--json",
		"--threshold", "1000", "--capacity", "50000000", "--required", "1700000",
		writeTranscript(t, exampleTranscript))
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, int64(584), report.SumBelowThreshold)
	assert.Equal(t, int64(81165), report.MinimumToFree)
	assert.Equal(t, int64(94853), report.SmallestToDelete)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		args    []string
		wantErr error
	}{
		{
			name:    "missing cd root",
			input:   "$ cd a\n$ ls\n1 x\n",
			wantErr: session.ErrMissingRoot,
		},
		{
			name:    "unknown command",
			input:   "$ cd /\n$ pwd\n/\n",
			wantErr: session.ErrUnknownCommand,
		},
		{
			name:    "invalid limits",
			input:   exampleTranscript,
			args:    []string{"--required", "80000000"},
			wantErr: analysis.ErrInvalidLimits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"analyze"}, tt.args...)
			args = append(args, writeTranscript(t, tt.input))
			_, _, err := execute(t, "", args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestDu(t *testing.T) {
	out, _, err := execute(t, "", "du", "--bytes", writeTranscript(t, exampleTranscript))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	wantOrder := []struct {
		size string
		path string
	}{
		{"48381165", "/"},
		{"24933642", "/d"},
		{"94853", "/a"},
		{"584", "/a/e"},
	}
	for i, want := range wantOrder {
		assert.Contains(t, lines[i], want.size)
		assert.Contains(t, lines[i], want.path)
	}
}

func TestDu_MatchAndTop(t *testing.T) {
	path := writeTranscript(t, exampleTranscript)

	out, _, err := execute(t, "", "du", "--bytes", "--match", "/a**", path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
	assert.NotContains(t, out, "/d")

	out, _, err = execute(t, "", "du", "--bytes", "--top", "1", path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
	assert.Contains(t, out, "48381165")
}

func TestDu_BadPattern(t *testing.T) {
	_, _, err := execute(t, "", "du", "--match", "[", writeTranscript(t, exampleTranscript))
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	out, _, err := execute(t, "", "count", writeTranscript(t, exampleTranscript))
	require.NoError(t, err)
	assert.Contains(t, out, "Directories: 4")
	assert.Contains(t, out, "Files: 10")
	assert.Contains(t, out, "Total size: 48381165")
}

func TestVerboseLogsCommands(t *testing.T) {
	_, stderr, err := execute(t, "", "count", "-v", writeTranscript(t, exampleTranscript))
	require.NoError(t, err)
	assert.Contains(t, stderr, "cwd=/a/e")
}

func TestSeed_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "nested", "seed.txt")

	_, _, err := execute(t, "", "seed", "--output", output, "--dirs", "25", "--files", "200", "--max-size", "1000")
	require.NoError(t, err)

	out, _, err := execute(t, "", "count", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Directories: 26")
	assert.Contains(t, out, "Files: 200")
}

func TestSeed_Stdout(t *testing.T) {
	out, _, err := execute(t, "", "seed", "--output", "-", "--dirs", "3", "--files", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$ cd /\n$ ls\n"))

	root, err := session.BuildTranscript(out)
	require.NoError(t, err)
	assert.Equal(t, 4, root.Stats().Directories)
}

func TestGenerateTree(t *testing.T) {
	root, err := generateTree(10, 50, 100)
	require.NoError(t, err)

	stats := root.Stats()
	assert.Equal(t, 11, stats.Directories)
	assert.Equal(t, 50, stats.Files)
	assert.LessOrEqual(t, stats.Size, int64(50*100))
	assert.GreaterOrEqual(t, stats.Size, int64(50))

	_, err = generateTree(-1, 0, 1)
	assert.True(t, errors.Is(err, errInvalidSeed))
	_, err = generateTree(1, 1, 0)
	assert.True(t, errors.Is(err, errInvalidSeed))
}
