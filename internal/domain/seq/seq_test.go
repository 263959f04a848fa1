package seq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityMatrix() [][]float64 {
	return [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func TestEvolve_IdentityKeepsSequence(t *testing.T) {
	s := []uint8{0, 1, 2, 3, 3, 0}
	err := Evolve(identityMatrix(), s, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 2, 3, 3, 0}, s)
}

func TestEvolve_DeterministicTarget(t *testing.T) {
	// Every row sends everything to code 2.
	mat := [][]float64{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}
	s := []uint8{0, 1, 2, 3}
	err := Evolve(mat, s, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []uint8{2, 2, 2, 2}, s)
}

func TestEvolve_UniformRowCoversAllCodes(t *testing.T) {
	mat := [][]float64{
		{0.25, 0.25, 0.25, 0.25},
		{0.25, 0.25, 0.25, 0.25},
		{0.25, 0.25, 0.25, 0.25},
		{0.25, 0.25, 0.25, 0.25},
	}
	s := make([]uint8, 4000)
	err := Evolve(mat, s, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	var seen [4]int
	for _, c := range s {
		require.LessOrEqual(t, c, uint8(3))
		seen[c]++
	}
	for code, count := range seen {
		assert.Greater(t, count, 0, "code %d never sampled", code)
	}
}

func TestEvolve_EmptySequence(t *testing.T) {
	assert.NoError(t, Evolve(identityMatrix(), nil, rand.New(rand.NewSource(1))))
}

func TestEvolve_BadArgs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	err := Evolve([][]float64{{1, 0, 0, 0}}, []uint8{0}, rng)
	assert.ErrorIs(t, err, ErrBadArgs)

	err = Evolve([][]float64{{1}, {1}, {1}, {1}}, []uint8{0}, rng)
	assert.ErrorIs(t, err, ErrBadArgs)

	err = Evolve(identityMatrix(), []uint8{4}, rng)
	assert.ErrorIs(t, err, ErrBadArgs)

	err = Evolve(identityMatrix(), []uint8{0}, nil)
	assert.ErrorIs(t, err, ErrBadArgs)
}

func TestMinDiff(t *testing.T) {
	got, err := MinDiff([]string{"AAAA", "ACGT"}, []string{"TTTT", "ACGA"})
	require.NoError(t, err)
	assert.Equal(t, 1, got) // ACGT vs ACGA
}

func TestMinDiff_IdenticalPair(t *testing.T) {
	got, err := MinDiff([]string{"ACGT"}, []string{"ACGT"})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestMinDiff_AllPositionsDiffer(t *testing.T) {
	got, err := MinDiff([]string{"AAAA"}, []string{"CCCC"})
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestMinDiff_BadArgs(t *testing.T) {
	_, err := MinDiff(nil, []string{"A"})
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = MinDiff([]string{"AA"}, []string{"AAA"})
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = MinDiff([]string{"AA", "A"}, []string{"AA"})
	assert.ErrorIs(t, err, ErrBadArgs)
}

func TestNonEmptyIntersection(t *testing.T) {
	a := []int64{1, 0, 0}
	b := []int64{0, 0, 1}
	s := []int64{1, 0, 1}

	got, err := NonEmptyIntersection(a, b, s)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestNonEmptyIntersection_AMisses(t *testing.T) {
	got, err := NonEmptyIntersection([]int64{0, 1, 0}, []int64{0, 0, 1}, []int64{1, 0, 1})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestNonEmptyIntersection_BMisses(t *testing.T) {
	got, err := NonEmptyIntersection([]int64{1, 0, 0}, []int64{0, 1, 0}, []int64{1, 0, 1})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestNonEmptyIntersection_BadArgs(t *testing.T) {
	_, err := NonEmptyIntersection([]int64{1}, []int64{1, 0}, []int64{1})
	assert.ErrorIs(t, err, ErrBadArgs)
}
