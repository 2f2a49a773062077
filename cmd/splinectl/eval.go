package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/spline"
)

func newEvalCmd(root *rootOptions) *cobra.Command {
	var (
		times []float64
		up    []float64
	)
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a curve at global times",
		Long: `Evaluate the position, tangent, normal, binormal and rotation of a curve at
one or more global times. Times outside [0, 1] extrapolate the end segments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upVec, err := parseVec("up", up)
			if err != nil {
				return err
			}
			c, err := root.loadCurve(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range times {
				seg, local, err := c.MapGlobalTime(t)
				if err != nil {
					return err
				}
				pos, err := c.EvaluatePosition(t)
				if err != nil {
					return err
				}
				tan, err := c.EvaluateTangent(t)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "t=%g (segment %d, local t=%.6f)\n", t, seg, local)
				fmt.Fprintf(out, "  Position: %s\n", formatVec(pos))
				fmt.Fprintf(out, "  Tangent:  %s\n", formatVec(tan))

				n, err := c.EvaluateNormal(t, upVec)
				if errors.Is(err, spline.ErrDegenerateGeometry) {
					fmt.Fprintf(out, "  Normal, binormal and rotation undefined: %v\n", err)
					continue
				} else if err != nil {
					return err
				}
				b, err := c.EvaluateBinormal(t, upVec)
				if err != nil {
					return err
				}
				rot, err := c.EvaluateRotation(t, upVec)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  Normal:   %s\n", formatVec(n))
				fmt.Fprintf(out, "  Binormal: %s\n", formatVec(b))
				fmt.Fprintf(out, "  Rotation: %s\n", formatRotation(rot))
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVarP(&times, "time", "t", []float64{0.5}, "global times to evaluate at")
	cmd.Flags().Float64SliceVar(&up, "up", []float64{0, 1, 0}, "up vector as x,y,z")
	return cmd
}

func formatRotation(rot r3.Rotation) string {
	return fmt.Sprintf("w=%.6f x=%.6f y=%.6f z=%.6f", rot.Real, rot.Imag, rot.Jmag, rot.Kmag)
}
