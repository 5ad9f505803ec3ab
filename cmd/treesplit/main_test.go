package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/bluesky-social/treesplit/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	err := newApp(&buf).Run(append([]string{"treesplit", "--log-level", "error"}, args...))
	require.NoError(t, err)
	return buf.String()
}

func TestGenerateCommand(t *testing.T) {
	assert := assert.New(t)

	out := runCLI(t, "generate", "--seed", "3", "--count", "5", "--min-size", "4", "--max-size", "40", "--max-label", "6")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(5, len(lines))
	for _, l := range lines {
		tr, err := tree.Parse(l, 6)
		assert.NoError(err)
		if err == nil {
			assert.Greater(tree.Size(tr), 4)
			assert.Less(tree.Size(tr), 40)
		}
	}

	// same seed, same output
	assert.Equal(out, runCLI(t, "generate", "--seed", "3", "--count", "5", "--min-size", "4", "--max-size", "40", "--max-label", "6"))
}

func TestSplitCommand(t *testing.T) {
	assert := assert.New(t)

	out := runCLI(t, "split", "--tree", "Branch(Leaf(1), Leaf(2))", "--replace", "Leaf(3)", "--index", "2", "--max-label", "4")
	assert.Equal("input: Branch(Leaf(1), Leaf(2))\nsubtree: Leaf(2)\nresult: Branch(Leaf(1), Leaf(3))\n", out)

	out = runCLI(t, "split", "--tree", "Branch(Leaf(1), Leaf(2))", "--seed", "9", "--max-label", "4")
	assert.Contains(out, "result: Branch(Leaf(1), Leaf(2))\n")
}

func TestSplitCommandErrors(t *testing.T) {
	assert := assert.New(t)
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	err := newApp(&buf).Run([]string{"treesplit", "split", "--tree", "Branch(Leaf(1)", "--max-label", "4"})
	assert.ErrorIs(err, tree.ErrSyntax)

	err = newApp(&buf).Run([]string{"treesplit", "split", "--tree", "Leaf(1)", "--index", "2", "--max-label", "4"})
	assert.Error(err)

	err = newApp(&buf).Run([]string{"treesplit", "generate", "--min-size", "3", "--max-size", "5"})
	assert.Error(err)
}

func TestHistogramCommand(t *testing.T) {
	assert := assert.New(t)

	out := runCLI(t, "histogram", "--tree", "Branch(Leaf(1), Leaf(2))", "--trials", "3000", "--workers", "2", "--seed", "1", "--max-label", "4")
	assert.Contains(out, "tree: Branch(Leaf(1), Leaf(2))")
	assert.Contains(out, "INDEX")
	assert.Contains(out, "nodes=3 trials=3000")
	assert.Contains(out, "df=2")
}
