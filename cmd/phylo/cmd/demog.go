package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/domain/demography"
)

var (
	demogSizes    string
	demogTimes    string
	demogAt       float64
	demogIntegral float64
	demogAtSet    bool
	demogIntSet   bool
)

var demogCmd = &cobra.Command{
	Use:   "demog --sizes <v0,v1,...> [--times <t0,...>] (--at <t> | --integral <x>)",
	Short: "Evaluate a piecewise-linear demographic function",
	Long: "The demographic function interpolates linearly between population sizes\n" +
		"at the given breakpoint times (one more size than times) and stays\n" +
		"constant past the last breakpoint. --at looks up N(t); --integral\n" +
		"computes the coalescent integral of 1/N over [0, x].",
	RunE: runDemog,
}

func init() {
	demogCmd.Flags().StringVar(&demogSizes, "sizes", "", "comma-separated population sizes (required)")
	demogCmd.Flags().StringVar(&demogTimes, "times", "", "comma-separated breakpoint times")
	demogCmd.Flags().Float64Var(&demogAt, "at", 0, "evaluate the population at this time")
	demogCmd.Flags().Float64Var(&demogIntegral, "integral", 0, "integrate 1/N over [0, x]")
	_ = demogCmd.MarkFlagRequired("sizes")
}

// parseFloats splits a comma-separated list of numbers. An empty string is
// an empty list.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func runDemog(cmd *cobra.Command, args []string) error {
	demogAtSet = cmd.Flags().Changed("at")
	demogIntSet = cmd.Flags().Changed("integral")
	if demogAtSet == demogIntSet {
		return fmt.Errorf("exactly one of --at and --integral is required")
	}

	sizes, err := parseFloats(demogSizes)
	if err != nil {
		return err
	}
	times, err := parseFloats(demogTimes)
	if err != nil {
		return err
	}

	if demogAtSet {
		v, err := demography.PopulationAt(sizes, times, demogAt)
		if err != nil {
			return err
		}
		fmt.Printf("N(%g) = %g\n", demogAt, v)
		return nil
	}

	v, err := demography.Integrate(sizes, times, demogIntegral)
	if err != nil {
		return err
	}
	fmt.Printf("∫ 1/N over [0,%g] = %g\n", demogIntegral, v)
	return nil
}
