package main

import (
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/spline/internal/curvefile"
)

func newLUTCmd(root *rootOptions) *cobra.Command {
	var (
		steps  int
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "lut [file]",
		Short: "Export a lookup table of curve samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCurve(args[0])
			if err != nil {
				return err
			}
			lut, err := c.LUT(steps)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, format, curvefile.Samples(lut))
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 100, "number of samples")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format, json or cbor (default from output file name, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// writeOutput encodes v to the named file, or to the command's output if
// path is empty.
func writeOutput(cmd *cobra.Command, path, format string, v any) error {
	f := curvefile.FormatFromPath(path)
	if format != "" {
		var err error
		f, err = curvefile.ParseFormat(format)
		if err != nil {
			return err
		}
	}
	if path == "" {
		return curvefile.Encode(cmd.OutOrStdout(), f, v)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := curvefile.Encode(file, f, v); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
