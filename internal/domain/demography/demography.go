// Package demography implements piecewise-linear demographic population
// functions: point lookup and the coalescent-style integral of 1/N(t).
//
// A demographic function is given as breakpoint times t[0] < t[1] < ... and
// population sizes v[0] ... v[len(t)], one more value than breakpoints: the
// function interpolates linearly from v[k] to v[k+1] over segment k and is
// constant at v[len(t)] past the last breakpoint.
package demography

import (
	"fmt"
	"math"
)

// ErrBadArgs wraps every argument-shape failure so callers can test for the
// whole class with errors.Is.
var ErrBadArgs = fmt.Errorf("demography: bad arguments")

func checkShape(sizes, times []float64) error {
	if len(sizes) != len(times)+1 {
		return fmt.Errorf("%w: want len(sizes) == len(times)+1, got %d and %d",
			ErrBadArgs, len(sizes), len(times))
	}
	for _, v := range sizes {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: population sizes must be positive and finite", ErrBadArgs)
		}
	}
	for i := 1; i < len(times); i++ {
		if !(times[i] > times[i-1]) {
			return fmt.Errorf("%w: breakpoint times must be strictly increasing", ErrBadArgs)
		}
	}
	return nil
}

// PopulationAt returns the population size at time t: linear interpolation
// inside the breakpoint grid, constant extrapolation past the last
// breakpoint.
func PopulationAt(sizes, times []float64, t float64) (float64, error) {
	if err := checkShape(sizes, times); err != nil {
		return 0, err
	}

	k := 0
	for k < len(times) && times[k] < t {
		k++
	}
	if k == len(times) {
		return sizes[k], nil
	}

	// Segment k spans (times[k-1], times[k]]; shift t and the segment width
	// so both are relative to the segment start.
	width := times[k]
	if k > 0 {
		t -= times[k-1]
		width -= times[k-1]
	}
	return sizes[k] + (t/width)*(sizes[k+1]-sizes[k]), nil
}

// Integrate returns the integral of 1/N(t) over [0, xHigh] in closed form:
// m*log(N1/N0) with m = dx/(N1-N0) on sloped segments, dx/N on flat ones,
// and (xHigh-x)/N for the constant tail past the last breakpoint.
func Integrate(sizes, times []float64, xHigh float64) (float64, error) {
	if err := checkShape(sizes, times); err != nil {
		return 0, err
	}
	if xHigh < 0 || math.IsNaN(xHigh) {
		return 0, fmt.Errorf("%w: negative upper bound %v", ErrBadArgs, xHigh)
	}

	x := 0.0
	v := 0.0
	for k := 0; x < xHigh; k++ {
		pop0 := sizes[k]
		if k == len(times) {
			v += (xHigh - x) / pop0
			break
		}

		pop1 := sizes[k+1]
		x1 := times[k]
		dx := x1 - x
		if xHigh < x1 {
			ndx := xHigh - x
			pop1 = pop0 + (ndx/dx)*(pop1-pop0)
			dx = ndx
		}

		if pop0 == pop1 {
			v += dx / pop0
		} else {
			m := dx / (pop1 - pop0)
			v += m * math.Log(pop1/pop0)
		}
		x = x1
	}
	return v, nil
}
