// Package curvefile reads and writes curve documents, the on-disk
// description of a curve's control points and settings, as JSON or CBOR.
package curvefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/spline"
)

type Format int

const (
	JSON Format = iota
	CBOR
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name as printed by [Format.String].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "cbor":
		return CBOR, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s)
	}
}

// FormatFromPath returns CBOR for files with a .cbor extension and JSON for
// everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return CBOR
	}
	return JSON
}

// Vec is a vector as stored in documents, [x, y, z].
type Vec [3]float64

func (v Vec) R3() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

func FromR3(v r3.Vec) Vec { return Vec{v.X, v.Y, v.Z} }

// Point is a control point. Omitted handles coincide with the position.
//
// The cbor package falls back to json struct tags, so one set of tags
// serves both formats.
type Point struct {
	Position Vec  `json:"position"`
	Left     *Vec `json:"left,omitempty"`
	Right    *Vec `json:"right,omitempty"`
}

// Document describes a curve.
type Document struct {
	// Sampling is the curve's sampling resolution. Zero selects
	// [spline.DefaultSampling].
	Sampling int `json:"sampling,omitempty"`
	// InvalidateOnMove enables [spline.WithInvalidateOnMove].
	InvalidateOnMove bool    `json:"invalidate_on_move,omitempty"`
	Points           []Point `json:"points"`
}

var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// Decode reads and validates a document.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding JSON curve document: %w", err)
		}
	case CBOR:
		if err := cborDecMode.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding CBOR curve document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", f)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads the document stored at path, choosing the format with
// [FormatFromPath].
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode writes v, typically a [Document] or the result of [Samples], in the
// given format. JSON output is indented.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case CBOR:
		return cbor.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unsupported format %s", f)
	}
}

// Validate checks the document's settings and control points. Errors wrap
// [spline.ErrInvalidArgument].
func (d *Document) Validate() error {
	if d.Sampling < 0 {
		return fmt.Errorf("%w: sampling must not be negative, got %d", spline.ErrInvalidArgument, d.Sampling)
	}
	for i, p := range d.Points {
		if !p.controlPoint().IsFinite() {
			return fmt.Errorf("%w: point %d is not finite", spline.ErrInvalidArgument, i)
		}
	}
	return nil
}

func (p Point) controlPoint() spline.ControlPoint {
	cp := spline.ControlPoint{
		Position:    p.Position.R3(),
		LeftHandle:  p.Position.R3(),
		RightHandle: p.Position.R3(),
	}
	if p.Left != nil {
		cp.LeftHandle = p.Left.R3()
	}
	if p.Right != nil {
		cp.RightHandle = p.Right.R3()
	}
	return cp
}

// Store returns a point store holding the document's control points.
func (d *Document) Store() (*spline.MemStore, error) {
	points := make([]spline.ControlPoint, len(d.Points))
	for i, p := range d.Points {
		points[i] = p.controlPoint()
	}
	return spline.NewMemStore(points...)
}

// Options returns the curve options the document's settings translate to.
func (d *Document) Options() []spline.Option {
	var opts []spline.Option
	if d.Sampling > 0 {
		opts = append(opts, spline.WithSampling(d.Sampling))
	}
	if d.InvalidateOnMove {
		opts = append(opts, spline.WithInvalidateOnMove(true))
	}
	return opts
}

// Curve returns a curve over [Document.Store]. opts are applied after the
// document's own settings.
func (d *Document) Curve(opts ...spline.Option) (*spline.Curve, error) {
	store, err := d.Store()
	if err != nil {
		return nil, err
	}
	return spline.NewCurve(store, append(d.Options(), opts...)...)
}

// FromCurve returns a document describing c.
func FromCurve(c *spline.Curve) *Document {
	doc := &Document{Sampling: c.Sampling()}
	for i := range c.Len() {
		cp, _ := c.Point(i)
		left, right := FromR3(cp.LeftHandle), FromR3(cp.RightHandle)
		doc.Points = append(doc.Points, Point{
			Position: FromR3(cp.Position),
			Left:     &left,
			Right:    &right,
		})
	}
	return doc
}

// Sample is a lookup table sample as written by [Encode].
type Sample struct {
	Index    int     `json:"index"`
	Position Vec     `json:"position"`
	Time     float64 `json:"time"`
}

// Samples converts a lookup table for encoding.
func Samples(lut *spline.LUT) []Sample {
	out := make([]Sample, 0, lut.Len())
	for p := range lut.All() {
		out = append(out, Sample{Index: p.Index, Position: FromR3(p.Position), Time: p.Time})
	}
	return out
}
