package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/spline"
)

func newProjectCmd(root *rootOptions) *cobra.Command {
	var (
		point []float64
		steps int
	)
	cmd := &cobra.Command{
		Use:   "project [file]",
		Short: "Find the global time closest to a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parseVec("point", point)
			if err != nil {
				return err
			}
			c, err := root.loadCurve(args[0])
			if err != nil {
				return err
			}
			t, err := c.Project(pt, steps)
			if err != nil {
				return err
			}
			ct, pos, err := c.Closest(pt, steps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Time: %.6f\n", t)
			fmt.Fprintf(out, "Closest point: %s at t=%.6f\n", formatVec(pos), ct)
			return nil
		},
	}
	cmd.Flags().Float64SliceVarP(&point, "point", "p", nil, "point to project as x,y,z")
	cmd.Flags().IntVar(&steps, "steps", spline.DefaultProjectionSteps, "number of lookup table samples")
	_ = cmd.MarkFlagRequired("point")
	return cmd
}
