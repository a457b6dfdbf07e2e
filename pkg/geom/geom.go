// Package geom holds the small planar helpers the hit tester and layout
// adapters share, built on gonum's r2 vectors.
package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Square returns the axis-aligned box of half-width half centered on c.
func Square(c r2.Vec, half float64) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: c.X - half, Y: c.Y - half},
		Max: r2.Vec{X: c.X + half, Y: c.Y + half},
	}
}

// Expand grows b by pad on every side.
func Expand(b r2.Box, pad float64) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: b.Min.X - pad, Y: b.Min.Y - pad},
		Max: r2.Vec{X: b.Max.X + pad, Y: b.Max.Y + pad},
	}
}

// Contains reports whether p lies inside b, boundary inclusive.
func Contains(b r2.Box, p r2.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the midpoint of b.
func Center(b r2.Box) r2.Vec {
	return r2.Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}
