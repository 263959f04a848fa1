package demography

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulationAt_Interpolation(t *testing.T) {
	sizes := []float64{1, 2}
	times := []float64{1}

	got, err := PopulationAt(sizes, times, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-12)

	got, err = PopulationAt(sizes, times, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestPopulationAt_PastLastBreakpoint(t *testing.T) {
	got, err := PopulationAt([]float64{1, 2}, []float64{1}, 10)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestPopulationAt_SecondSegment(t *testing.T) {
	// Segments: [0,1] from 1 to 2, (1,3] from 2 to 4.
	sizes := []float64{1, 2, 4}
	times := []float64{1, 3}
	got, err := PopulationAt(sizes, times, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestPopulationAt_ShapeMismatch(t *testing.T) {
	_, err := PopulationAt([]float64{1, 2}, []float64{1, 2}, 0.5)
	assert.ErrorIs(t, err, ErrBadArgs)
}

func TestIntegrate_ConstantPopulation(t *testing.T) {
	got, err := Integrate([]float64{2}, nil, 5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)
}

func TestIntegrate_LinearSegment(t *testing.T) {
	// N goes 1 -> 2 over [0,1]: integral of 1/N is log(2).
	got, err := Integrate([]float64{1, 2}, []float64{1}, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), got, 1e-12)
}

func TestIntegrate_TruncatedSegment(t *testing.T) {
	// Stop halfway through a 1 -> 3 segment over [0,1]: N(0.5) = 2.
	got, err := Integrate([]float64{1, 3}, []float64{1}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Log(2), got, 1e-12)
}

func TestIntegrate_FlatSegmentUsesReciprocal(t *testing.T) {
	got, err := Integrate([]float64{2, 2}, []float64{1}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)
}

func TestIntegrate_PastLastBreakpoint(t *testing.T) {
	// log(2) over the sloped segment, then 3 time units at N=2.
	got, err := Integrate([]float64{1, 2}, []float64{1}, 4)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2)+1.5, got, 1e-12)
}

func TestIntegrate_ZeroBound(t *testing.T) {
	got, err := Integrate([]float64{1, 2}, []float64{1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestIntegrate_BadArgs(t *testing.T) {
	_, err := Integrate([]float64{1}, []float64{1}, 1)
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = Integrate([]float64{1, 2}, []float64{1}, -1)
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = Integrate([]float64{1, -2}, []float64{1}, 1)
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = Integrate([]float64{1, 2, 3}, []float64{2, 1}, 1)
	assert.ErrorIs(t, err, ErrBadArgs)
}
