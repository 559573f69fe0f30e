// Package shape provides the convex shapes consumed by the collision package.
// Shapes are validated once at construction and are immutable afterwards.
package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/pkg/geom"
)

// Convex is a convex shape described only by its support mapping.
type Convex interface {
	// Center returns the local-space center used to seed the search direction.
	Center() mgl64.Vec2

	// FarthestPoint returns the world-space point of the shape, placed by t,
	// with the largest projection onto the world-space direction.
	FarthestPoint(direction mgl64.Vec2, t geom.Transform) mgl64.Vec2
}

// Kind identifies the concrete shape behind a Convex.
type Kind uint8

const (
	KindPolygon Kind = iota
	KindTriangle
	KindRectangle
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "POLYGON"
	case KindTriangle:
		return "TRIANGLE"
	case KindRectangle:
		return "RECTANGLE"
	case KindCircle:
		return "CIRCLE"
	default:
		return "UNKNOWN"
	}
}

var (
	_ Convex = (*Polygon)(nil)
	_ Convex = (*Circle)(nil)
)
