// Command splinectl evaluates curves described by curve documents.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/curvefile"
)

type rootOptions struct {
	verbose  bool
	sampling int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "splinectl",
		Short: "Evaluate and query piecewise cubic Bézier curves",
		Long: `splinectl loads curve documents (JSON, or CBOR for files ending in .cbor)
and evaluates positions, orientations and lengths at global times, projects
points onto the curve, and exports lookup tables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				spline.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	cmd.PersistentFlags().IntVar(&opts.sampling, "sampling", 0, "override the document's sampling resolution")

	cmd.AddCommand(
		newLengthCmd(opts),
		newEvalCmd(opts),
		newProjectCmd(opts),
		newLUTCmd(opts),
		newInsertCmd(opts),
	)
	return cmd
}

// loadCurve loads the curve document at path, applying command line
// overrides.
func (o *rootOptions) loadCurve(path string) (*spline.Curve, error) {
	doc, err := curvefile.Load(path)
	if err != nil {
		return nil, err
	}
	var opts []spline.Option
	if o.sampling != 0 {
		opts = append(opts, spline.WithSampling(o.sampling))
	}
	return doc.Curve(opts...)
}

func parseVec(name string, v []float64) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("--%s needs 3 components, got %d", name, len(v))
	}
	return spline.V(v[0], v[1], v[2]), nil
}

func formatVec(v r3.Vec) string {
	// Adding zero turns -0 into 0.
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X+0, v.Y+0, v.Z+0)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
