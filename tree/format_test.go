package tree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Leaf(3)", mustLeaf(t, 3).String())
	assert.Equal("Branch(Branch(Leaf(1), Leaf(2)), Leaf(4))", exampleTree(t).String())
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	testVec := []struct {
		Input    string
		Expected string
	}{
		{"Leaf(1)", "Leaf(1)"},
		{"  Leaf( 4 ) ", "Leaf(4)"},
		{"Branch(Leaf(1), Leaf(2))", "Branch(Leaf(1), Leaf(2))"},
		{"Branch(Leaf(1),Leaf(2))", "Branch(Leaf(1), Leaf(2))"},
		{"Branch(\n  Branch(Leaf(1), Leaf(2)),\n  Leaf(4))", "Branch(Branch(Leaf(1), Leaf(2)), Leaf(4))"},
	}

	for _, c := range testVec {
		tr, err := Parse(c.Input, 4)
		assert.NoError(err, c.Input)
		if err == nil {
			assert.Equal(c.Expected, tr.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	syntaxErrors := []string{
		"",
		"Leaf",
		"Leaf()",
		"Leaf(x)",
		"Leaf(1",
		"Leaf(1))",
		"Branch(Leaf(1))",
		"Branch(Leaf(1), Leaf(2)",
		"Tree(Leaf(1), Leaf(2))",
		"Branch(Leaf(1); Leaf(2))",
	}
	for _, s := range syntaxErrors {
		_, err := Parse(s, 4)
		assert.True(errors.Is(err, ErrSyntax), "expected syntax error for %q, got %v", s, err)
	}

	labelErrors := []string{
		"Leaf(0)",
		"Leaf(5)",
		"Leaf(-2)",
		"Branch(Leaf(1), Leaf(9))",
	}
	for _, s := range labelErrors {
		_, err := Parse(s, 4)
		assert.True(errors.Is(err, ErrInvalidLabel), "expected label error for %q, got %v", s, err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	assert := assert.New(t)
	r := rand.New(rand.NewSource(1))

	for range 100 {
		tr := randomTree(r, 12, 7)
		out, err := Parse(tr.String(), 12)
		assert.NoError(err)
		assert.True(Equal(tr, out))
	}
}

func TestPretty(t *testing.T) {
	assert := assert.New(t)

	out := Pretty(exampleTree(t))
	assert.True(strings.HasPrefix(out, "Branch (size=5 sum=7)"))
	assert.Contains(out, "Branch (size=3 sum=3)")
	for _, s := range []string{"Leaf(1)", "Leaf(2)", "Leaf(4)"} {
		assert.Contains(out, s)
	}
	assert.Equal(5, len(strings.Split(strings.TrimSpace(out), "\n")))

	assert.Equal("Leaf(3)", strings.TrimSpace(Pretty(mustLeaf(t, 3))))
}

func TestDigest(t *testing.T) {
	assert := assert.New(t)

	a, err := Digest(exampleTree(t))
	assert.NoError(err)
	b, err := Digest(exampleTree(t))
	assert.NoError(err)
	assert.Equal(a, b)
	assert.True(a.Defined())

	c, err := Digest(mustLeaf(t, 4))
	assert.NoError(err)
	assert.NotEqual(a, c)

	// the digest is over the canonical encoding, so same-checksum trees still differ
	d, err := Digest(NewBranch(mustLeaf(t, 3), mustLeaf(t, 4)))
	assert.NoError(err)
	e, err := Digest(NewBranch(mustLeaf(t, 4), mustLeaf(t, 3)))
	assert.NoError(err)
	assert.NotEqual(d, e)
}
