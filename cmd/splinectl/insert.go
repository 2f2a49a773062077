package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/spline/internal/curvefile"
)

func newInsertCmd(root *rootOptions) *cobra.Command {
	var (
		index  int
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "insert [file]",
		Short: "Insert a control point and write the resulting document",
		Long: `Insert a control point at the given index. Points inserted between two
existing points split the segment at its midpoint; points inserted at either
end extend the curve by one step. Index -1 appends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCurve(args[0])
			if err != nil {
				return err
			}
			if index == -1 {
				index = c.Len()
			}
			cp, err := c.AddPoint(index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Inserted point %d at %s\n", index, formatVec(cp.Position))
			return writeOutput(cmd, output, format, curvefile.FromCurve(c))
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", -1, "index of the new point")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format, json or cbor (default from output file name, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
