// Package geom provides coordinate helpers for the rail map.
//
// The map widget uses a simple planar CRS where the first component of a
// point is the world z coordinate and the second is the world x coordinate.
// All conversions from world space go through MapXZ so the pair order is
// applied in exactly one place.
package geom

import "math"

// Point is a 2D map-space coordinate: [z, x] in world terms.
// It marshals to a two-element JSON array, which is what the map expects.
type Point [2]float64

// MapXZ converts world x/z coordinates into a map-space Point.
func MapXZ(x, z float64) Point {
	return Point{z, x}
}

// WorldX returns the world x coordinate of the point.
func (p Point) WorldX() float64 { return p[1] }

// WorldZ returns the world z coordinate of the point.
func (p Point) WorldZ() float64 { return p[0] }

// Centroid returns the componentwise arithmetic mean of the given points.
// It returns the zero Point for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sum0, sum1 float64
	for _, p := range points {
		sum0 += p[0]
		sum1 += p[1]
	}

	n := float64(len(points))
	return Point{sum0 / n, sum1 / n}
}

// Heading returns the bearing in degrees from head towards tail, in [0, 360).
// The quarter-turn offset matches the rotation of the train marker art and
// must not be changed independently of it.
func Heading(head, tail Point) float64 {
	angle := math.Atan2(tail.WorldZ()-head.WorldZ(), tail.WorldX()-head.WorldX())*180/math.Pi - 90
	return NormalizeDegrees(angle)
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(angle float64) float64 {
	return math.Mod(math.Mod(angle, 360)+360, 360)
}
