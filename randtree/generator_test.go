package randtree

import (
	"testing"

	"github.com/bluesky-social/treesplit/rng"
	"github.com/bluesky-social/treesplit/tree"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkLabels(t *testing.T, tr tree.Tree, maxLabel int) {
	tree.Walk(tr, func(_ tree.Context, node tree.Tree) {
		if l, ok := node.(*tree.Leaf); ok {
			assert.GreaterOrEqual(t, l.Label(), 1)
			assert.LessOrEqual(t, l.Label(), maxLabel)
		}
	})
}

func TestGenerateBounds(t *testing.T) {
	assert := assert.New(t)
	src := rng.New(77)

	testVec := []struct {
		MinSize  int
		MaxSize  int
		MaxLabel int
	}{
		{0, 2, 1},
		{1, 4, 4},
		{2, 4, 4},
		{5, 30, 8},
		{20, 200, 100},
	}

	for _, c := range testVec {
		for range 100 {
			tr := Generate(c.MinSize, c.MaxSize, c.MaxLabel, src)
			size := tree.Size(tr)
			assert.Greater(size, c.MinSize)
			assert.Less(size, c.MaxSize)
			checkLabels(t, tr, c.MaxLabel)
		}
	}
}

func TestGenerateFaker(t *testing.T) {
	assert := assert.New(t)
	src := rng.FromFaker(gofakeit.New(3))

	for range 50 {
		tr := Generate(4, 50, 6, src)
		assert.Greater(tree.Size(tr), 4)
		assert.Less(tree.Size(tr), 50)
		checkLabels(t, tr, 6)
	}
}

func TestPinnedGeneration(t *testing.T) {
	assert := assert.New(t)

	// branch; leaf labelled 1; leaf labelled 4
	src := rng.NewSequence(0.9, 0.1, 0.0, 0.1, 0.99)
	g, err := NewGenerator(&Config{MinSize: 2, MaxSize: 10, MaxLabel: 4}, src)
	require.NoError(t, err)

	tr, err := g.Next()
	assert.NoError(err)
	assert.Equal("Branch(Leaf(1), Leaf(4))", tr.String())
	assert.Equal(0, src.Pos())
}

func TestBudgetExceeded(t *testing.T) {
	assert := assert.New(t)

	// always branch, so every attempt runs into the budget
	g, err := NewGenerator(&Config{MinSize: 0, MaxSize: 4, MaxLabel: 2, MaxAttempts: 5}, rng.NewSequence(0.9))
	require.NoError(t, err)

	_, size, err := g.attempt(0)
	assert.ErrorIs(err, errBudgetExceeded)
	assert.Equal(4, size)

	_, err = g.Next()
	assert.ErrorIs(err, ErrAttemptsExhausted)
	assert.NotErrorIs(err, errBudgetExceeded)
}

func TestMaxAttempts(t *testing.T) {
	assert := assert.New(t)

	// always a single leaf, which is too small
	src := rng.NewSequence(0.0)
	g, err := NewGenerator(&Config{MinSize: 50, MaxSize: 52, MaxLabel: 2, MaxAttempts: 3}, src)
	require.NoError(t, err)

	tr, err := g.Next()
	assert.ErrorIs(err, ErrAttemptsExhausted)
	assert.Nil(tr)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	testVec := []struct {
		Config Config
		Valid  bool
	}{
		{Config{MinSize: 0, MaxSize: 2, MaxLabel: 1}, true},
		{Config{MinSize: 2, MaxSize: 4, MaxLabel: 1}, true},
		{Config{MinSize: 10, MaxSize: 100, MaxLabel: 16, MaxAttempts: 10}, true},
		{Config{MinSize: 0, MaxSize: 1, MaxLabel: 1}, false},
		{Config{MinSize: 3, MaxSize: 5, MaxLabel: 1}, false},
		{Config{MinSize: 5, MaxSize: 5, MaxLabel: 1}, false},
		{Config{MinSize: 9, MaxSize: 3, MaxLabel: 1}, false},
		{Config{MinSize: 0, MaxSize: 10, MaxLabel: 0}, false},
		{Config{MinSize: -1, MaxSize: 10, MaxLabel: 1}, false},
		{Config{MinSize: 0, MaxSize: 10, MaxLabel: 1, MaxAttempts: -1}, false},
	}

	for _, c := range testVec {
		err := c.Config.Validate()
		if c.Valid {
			assert.NoError(err, "%+v", c.Config)
		} else {
			assert.ErrorIs(err, ErrInvalidConfig, "%+v", c.Config)
		}
	}

	_, err := NewGenerator(&Config{MinSize: 3, MaxSize: 5, MaxLabel: 1}, rng.New(1))
	assert.ErrorIs(err, ErrInvalidConfig)
}

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGenerator(nil, rng.New(9))
	require.NoError(t, err)
	assert.Equal(*DefaultConfig(), g.Config)

	tr, err := g.Next()
	assert.NoError(err)
	assert.Greater(tree.Size(tr), g.Config.MinSize)
	assert.Less(tree.Size(tr), g.Config.MaxSize)
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	src := rng.New(1)

	for b.Loop() {
		_ = Generate(100, 1000, 16, src)
	}
}
