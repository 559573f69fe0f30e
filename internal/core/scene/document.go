package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/pkg/geom"
)

// Document is the YAML form of a scene.
type Document struct {
	Name   string     `json:"name" yaml:"name"`
	Bodies []BodySpec `json:"bodies" yaml:"bodies"`
}

// BodySpec describes one placed shape. ID is optional; a random one is
// assigned when it is empty.
type BodySpec struct {
	ID        string        `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Shape     ShapeSpec     `json:"shape" yaml:"shape"`
	Transform TransformSpec `json:"transform" yaml:"transform"`
}

// ShapeSpec selects a shape factory by Type and carries its parameters.
//
//	polygon, triangle: vertices (counter-clockwise, local space)
//	rectangle:         width, height
//	circle:            radius, optional center
type ShapeSpec struct {
	Type     string       `json:"type" yaml:"type"`
	Vertices [][2]float64 `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Width    float64      `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64      `json:"height,omitempty" yaml:"height,omitempty"`
	Radius   float64      `json:"radius,omitempty" yaml:"radius,omitempty"`
	Center   *[2]float64  `json:"center,omitempty" yaml:"center,omitempty"`
}

// TransformSpec places a shape. Angle is in radians, AngleDeg in degrees;
// at most one of them may be set.
type TransformSpec struct {
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Angle    *float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	AngleDeg *float64 `json:"angle_deg,omitempty" yaml:"angle_deg,omitempty"`
}

// Build constructs the shape.
func (s ShapeSpec) Build() (shape.Convex, error) {
	switch strings.ToLower(s.Type) {
	case "polygon":
		return shape.NewPolygon(points(s.Vertices)...)
	case "triangle":
		if len(s.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 vertices, got %d", shape.ErrTooFewVertices, len(s.Vertices))
		}
		v := points(s.Vertices)
		return shape.NewTriangle(v[0], v[1], v[2])
	case "rectangle":
		return shape.NewRectangle(s.Width, s.Height)
	case "circle":
		var center mgl64.Vec2
		if s.Center != nil {
			center = mgl64.Vec2(*s.Center)
		}
		return shape.NewCircleAt(center, s.Radius)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Type)
	}
}

// Build returns the transform: rotation first, then translation.
func (t TransformSpec) Build() (geom.Transform, error) {
	var angle float64
	switch {
	case t.Angle != nil && t.AngleDeg != nil:
		return geom.Transform{}, ErrConflictingAngle
	case t.Angle != nil:
		angle = *t.Angle
	case t.AngleDeg != nil:
		angle = *t.AngleDeg * math.Pi / 180
	}
	return geom.NewTransform(t.X, t.Y, angle), nil
}

// Build turns the description into a Body. index is only used in error messages.
func (b BodySpec) Build(index int) (Body, error) {
	label := b.Name
	if label == "" {
		label = fmt.Sprintf("#%d", index)
	}

	id := uuid.New()
	if b.ID != "" {
		parsed, err := uuid.Parse(b.ID)
		if err != nil {
			return Body{}, fmt.Errorf("%w %s: id: %w", ErrInvalidBody, label, err)
		}
		id = parsed
	}

	sh, err := b.Shape.Build()
	if err != nil {
		return Body{}, fmt.Errorf("%w %s: %w", ErrInvalidBody, label, err)
	}

	tr, err := b.Transform.Build()
	if err != nil {
		return Body{}, fmt.Errorf("%w %s: %w", ErrInvalidBody, label, err)
	}

	return Body{ID: id, Name: b.Name, Shape: sh, Transform: tr}, nil
}

func points(raw [][2]float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(raw))
	for i, p := range raw {
		out[i] = mgl64.Vec2(p)
	}
	return out
}
