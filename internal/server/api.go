package server

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/scene"
)

// Query asks whether two bodies overlap. The body format is the one used by
// scene documents.
type Query struct {
	ID          string         `json:"id,omitempty"`
	A           scene.BodySpec `json:"a"`
	B           scene.BodySpec `json:"b"`
	Penetration bool           `json:"penetration,omitempty"`
}

// decodeQuery reads one Query and rejects unknown fields.
func decodeQuery(r io.Reader) (Query, error) {
	var q Query
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	err := dec.Decode(&q)
	return q, err
}

// Response answers a Query. Normal points from A toward B; moving B by
// Normal*Depth separates the bodies.
type Response struct {
	ID         string      `json:"id"`
	Intersects bool        `json:"intersects"`
	Normal     *[2]float64 `json:"normal,omitempty"`
	Depth      *float64    `json:"depth,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (s *Server) answer(q Query) (Response, error) {
	resp := Response{ID: q.ID}
	if resp.ID == "" {
		resp.ID = uuid.NewString()
	}

	a, err := q.A.Build(0)
	if err != nil {
		return resp, fmt.Errorf("%w: a: %w", ErrInvalidQuery, err)
	}
	b, err := q.B.Build(1)
	if err != nil {
		return resp, fmt.Errorf("%w: b: %w", ErrInvalidQuery, err)
	}

	if !q.Penetration {
		resp.Intersects = s.detector.Detect(a.Shape, a.Transform, b.Shape, b.Transform)
		return resp, nil
	}

	var p collision.Penetration
	if s.detector.DetectPenetration(a.Shape, a.Transform, b.Shape, b.Transform, &p) {
		normal := [2]float64(p.Normal)
		depth := p.Depth
		resp.Intersects = true
		resp.Normal = &normal
		resp.Depth = &depth
	}
	return resp, nil
}
