// Package scene loads sets of placed convex bodies and tests every pair of
// them for overlap.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/pkg/geom"
)

// Body is a shape placed in world space.
type Body struct {
	ID        uuid.UUID
	Name      string
	Shape     shape.Convex
	Transform geom.Transform
}

// Label returns the name, or the ID when the body is unnamed.
func (b Body) Label() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID.String()
}

// Scene is an immutable list of bodies.
type Scene struct {
	name   string
	bodies []Body
}

// New builds a scene from bodies. IDs must be unique and there must be at
// least two bodies.
func New(name string, bodies ...Body) (*Scene, error) {
	if len(bodies) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNoBodies, len(bodies))
	}

	seen := make(map[uuid.UUID]struct{}, len(bodies))
	for _, b := range bodies {
		if b.Shape == nil {
			return nil, fmt.Errorf("%w %s: no shape", ErrInvalidBody, b.Label())
		}
		if _, ok := seen[b.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBody, b.ID)
		}
		seen[b.ID] = struct{}{}
	}

	cp := make([]Body, len(bodies))
	copy(cp, bodies)
	return &Scene{name: name, bodies: cp}, nil
}

// FromDocument builds every body of doc.
func FromDocument(doc Document) (*Scene, error) {
	bodies := make([]Body, 0, len(doc.Bodies))
	for i, bs := range doc.Bodies {
		b, err := bs.Build(i)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return New(doc.Name, bodies...)
}

// Decode reads a YAML scene document.
func Decode(r io.Reader) (*Scene, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrNoBodies)
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return FromDocument(doc)
}

// Load reads a YAML scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) Name() string {
	return s.name
}

// Bodies returns a copy of the bodies in document order.
func (s *Scene) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Len returns the number of bodies.
func (s *Scene) Len() int {
	return len(s.bodies)
}
