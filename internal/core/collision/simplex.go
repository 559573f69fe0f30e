package collision

import "github.com/go-gl/mathgl/mgl64"

// Simplex holds up to three points of the Minkowski difference. The last
// point is always the most recently added one.
type Simplex struct {
	Points [3]mgl64.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

func (s *Simplex) push(p mgl64.Vec2) {
	s.Points[s.Count] = p
	s.Count++
}

func (s *Simplex) last() mgl64.Vec2 {
	return s.Points[s.Count-1]
}

// removeAt drops the point at i and keeps the order of the rest.
func (s *Simplex) removeAt(i int) {
	copy(s.Points[i:s.Count-1], s.Points[i+1:s.Count])
	s.Count--
}

// Slice returns the live points, oldest first.
func (s *Simplex) Slice() []mgl64.Vec2 {
	return s.Points[:s.Count]
}
