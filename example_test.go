package spline_test

import (
	"fmt"

	"honnef.co/go/spline"
)

func ExampleCurve() {
	store, err := spline.NewMemStore(
		spline.ControlPoint{
			Position:    spline.V(0, 0, 0),
			LeftHandle:  spline.V(1, 0, 0),
			RightHandle: spline.V(1, 0, 0),
		},
		spline.ControlPoint{
			Position:    spline.V(10, 0, 0),
			LeftHandle:  spline.V(9, 0, 0),
			RightHandle: spline.V(9, 0, 0),
		},
	)
	if err != nil {
		panic(err)
	}
	c, err := spline.NewCurve(store)
	if err != nil {
		panic(err)
	}

	length, _ := c.ApproximateLength()
	mid, _ := c.EvaluatePosition(0.5)
	t, _ := c.Project(spline.V(5, 1, 0), 50)
	fmt.Printf("length: %.3f\n", length)
	fmt.Printf("midpoint: (%.3f, %.3f, %.3f)\n", mid.X, mid.Y, mid.Z)
	fmt.Printf("(5, 1, 0) projects to t=%.3f\n", t)
	// Output:
	// length: 10.000
	// midpoint: (5.000, 0.000, 0.000)
	// (5, 1, 0) projects to t=0.500
}

func ExampleCurve_AddPoint() {
	var store spline.MemStore
	c, err := spline.NewCurve(&store, spline.WithSampling(200))
	if err != nil {
		panic(err)
	}
	for range 3 {
		if _, err := c.AddPoint(c.Len()); err != nil {
			panic(err)
		}
	}
	// Split the second segment.
	cp, _ := c.AddPoint(2)
	fmt.Printf("(%g, %g, %g)\n", cp.Position.X, cp.Position.Y, cp.Position.Z)

	length, _ := c.ApproximateLength()
	fmt.Printf("%d points, length %.3f\n", c.Len(), length)
	// Output:
	// (1.5, 0, 0)
	// 4 points, length 2.000
}
