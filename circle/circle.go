// Package circle represents the circumcircle that defines a Voronoi vertex:
// a center point and a radius.
//
// The sweepline core never rasterizes or transforms circles — that belongs to
// rendering, which is out of scope for this package — it only
// needs a stable, comparable representation of "the circumcircle of three
// adjacent sites" to carry as a dcel.Vertex.
package circle

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gocompgeom/voronoi/numeric"
	"github.com/gocompgeom/voronoi/point"
)

// Circle represents a circle in 2D space with a center point and a radius.
type Circle struct {
	center point.Point
	radius float64
}

// New creates a new Circle with the specified center coordinates and radius.
func New(x, y, radius float64) Circle {
	return Circle{center: point.New(x, y), radius: math.Abs(radius)}
}

// NewFromPoint creates a new Circle with the specified center point.Point and radius.
func NewFromPoint(center point.Point, radius float64) Circle {
	return Circle{center: center, radius: math.Abs(radius)}
}

// Center returns the center point of the Circle.
func (c Circle) Center() point.Point {
	return c.center
}

// Radius returns the radius of the Circle.
func (c Circle) Radius() float64 {
	return c.radius
}

// Area calculates the area of the circle: π * radius².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference calculates the circumference of the circle: 2 * π * radius.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// Eq determines whether c and other have equal centers and radii within epsilon.
func (c Circle) Eq(other Circle, epsilon float64) bool {
	return c.center.Eq(other.center, epsilon) && numeric.FloatEquals(c.radius, other.radius, epsilon)
}

// String returns a human-readable representation of the Circle.
func (c Circle) String() string {
	return fmt.Sprintf("Circle[center=%s, radius=%g]", c.center, c.radius)
}

// MarshalJSON serializes Circle as JSON.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Center point.Point `json:"center"`
		Radius float64     `json:"radius"`
	}{Center: c.center, Radius: c.radius})
}

// UnmarshalJSON deserializes JSON into a Circle.
func (c *Circle) UnmarshalJSON(data []byte) error {
	var temp struct {
		Center point.Point `json:"center"`
		Radius float64     `json:"radius"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	c.center = temp.Center
	c.radius = temp.Radius
	return nil
}
