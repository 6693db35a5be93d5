package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "factorcalc",
		Short:        "Offline land adjustment-factor calculator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(computeCmd())
	rootCmd.AddCommand(tablesCmd())
	return rootCmd
}

func computeCmd() *cobra.Command {
	var opts computeOptions

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Resolve every factor for one parcel and print the result with its trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.hasDistance = cmd.Flags().Changed("distance")
			return runCompute(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.position, "position", "", "street position (medial, corner_residential, corner_commercial, interior_lot)")
	f.Float64Var(&opts.frontage, "frontage", 0, "street frontage in meters")
	f.Float64Var(&opts.depth, "depth", 0, "lot depth in meters")
	f.Float64Var(&opts.area, "area", 0, "lot area in square meters")
	f.Float64Var(&opts.distance, "distance", 0, "distance from the street in meters (interior lots only)")
	f.StringVar(&opts.shape, "shape", "", "plan shape (regular, irregular, very_irregular, delta_triangle, nabla_triangle)")
	f.Float64Var(&opts.slope, "slope", 0, "slope in percent")
	f.StringVar(&opts.elevationDirection, "elevation-direction", "above", "grade relative to the street (above, below)")
	f.Float64Var(&opts.elevation, "elevation", 0, "grade difference in meters")
	f.StringVarP(&opts.output, "output", "o", "text", "output format (text, yaml, json)")

	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("frontage")
	_ = cmd.MarkFlagRequired("depth")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func tablesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the rule version and the official factor tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format (yaml, json)")
	return cmd
}
