package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spline/internal/curvefile"
)

const straightJSON = `{
  "points": [
    {"position": [0, 0, 0], "left": [1, 0, 0], "right": [1, 0, 0]},
    {"position": [10, 0, 0], "left": [9, 0, 0], "right": [9, 0, 0]}
  ]
}`

func writeCurve(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curve.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLength(t *testing.T) {
	path := writeCurve(t, straightJSON)
	out, err := run(t, "length", "--segments", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Length: 10.000000")
	assert.Contains(t, out, "Segment 0: 10.000000 (100.00%)")
}

func TestLengthZeroLengthCurve(t *testing.T) {
	path := writeCurve(t, `{
  "points": [
    {"position": [2, 2, 2], "left": [2, 2, 2], "right": [2, 2, 2]},
    {"position": [2, 2, 2], "left": [2, 2, 2], "right": [2, 2, 2]},
    {"position": [2, 2, 2], "left": [2, 2, 2], "right": [2, 2, 2]}
  ]
}`)
	out, err := run(t, "length", "--segments", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Length: 0.000000")
	assert.Contains(t, out, "Segment 0: 0.000000\n")
	assert.Contains(t, out, "Segment 1: 0.000000\n")
	assert.NotContains(t, out, "NaN")
	assert.NotContains(t, out, "%")
}

func TestEval(t *testing.T) {
	path := writeCurve(t, straightJSON)
	out, err := run(t, "eval", path, "--time", "0.5,1")
	require.NoError(t, err)
	assert.Contains(t, out, "t=0.5 (segment 0, local t=0.500000)")
	assert.Contains(t, out, "Position: (5.000000, 0.000000, 0.000000)")
	assert.Contains(t, out, "Tangent:  (1.000000, 0.000000, 0.000000)")
	assert.Contains(t, out, "Normal:   (0.000000, 1.000000, 0.000000)")
	assert.Contains(t, out, "Position: (10.000000, 0.000000, 0.000000)")

	// Tangent parallel to up.
	out, err = run(t, "eval", path, "--up", "1,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "undefined")

	_, err = run(t, "eval", path, "--up", "1,0")
	assert.ErrorContains(t, err, "--up needs 3 components")
}

func TestProject(t *testing.T) {
	path := writeCurve(t, straightJSON)
	out, err := run(t, "project", path, "--point", "5,1,0", "--steps", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Time: 0.500000")
	assert.Contains(t, out, "Closest point: (5.000000, 0.000000, 0.000000)")

	_, err = run(t, "project", path, "--point", "5,1,0", "--steps", "0")
	assert.Error(t, err)
	_, err = run(t, "project", path)
	assert.Error(t, err, "--point is required")
}

func TestLUT(t *testing.T) {
	path := writeCurve(t, straightJSON)
	out, err := run(t, "lut", path, "--steps", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"time": 0.5`)

	dst := filepath.Join(t.TempDir(), "lut.cbor")
	_, err = run(t, "lut", path, "--steps", "5", "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.False(t, strings.HasPrefix(string(data), "["), "output should be CBOR, not JSON")

	_, err = run(t, "lut", path, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestInsert(t *testing.T) {
	path := writeCurve(t, straightJSON)
	dst := filepath.Join(t.TempDir(), "out.json")
	_, err := run(t, "insert", path, "--index", "1", "-o", dst)
	require.NoError(t, err)

	doc, err := curvefile.Load(dst)
	require.NoError(t, err)
	require.Len(t, doc.Points, 3)
	assert.Equal(t, curvefile.Vec{5, 0, 0}, doc.Points[1].Position)

	_, err = run(t, "insert", path, "--index", "7")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "length", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSamplingOverride(t *testing.T) {
	path := writeCurve(t, straightJSON)
	_, err := run(t, "--sampling", "-1", "length", path)
	assert.Error(t, err)
	out, err := run(t, "--sampling", "3", "length", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Length: 10.000000")
}
