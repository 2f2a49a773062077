package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLengthCmd(root *rootOptions) *cobra.Command {
	var segments bool
	cmd := &cobra.Command{
		Use:   "length [file]",
		Short: "Print the approximate length of a curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCurve(args[0])
			if err != nil {
				return err
			}
			length, err := c.ApproximateLength()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Length: %.6f\n", length)
			if segments {
				lengths, err := c.SegmentLengths()
				if err != nil {
					return err
				}
				for i, l := range lengths {
					if length == 0 {
						// No meaningful share of a zero-length curve.
						fmt.Fprintf(out, "  Segment %d: %.6f\n", i, l)
						continue
					}
					fmt.Fprintf(out, "  Segment %d: %.6f (%.2f%%)\n", i, l, 100*l/length)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&segments, "segments", "s", false, "also print the length of every segment")
	return cmd
}
