package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Penetration is the minimum translation that separates two overlapping shapes.
// Normal is a unit vector pointing from the first shape toward the second;
// moving the second shape by Normal*Depth leaves the pair touching.
type Penetration struct {
	Normal mgl64.Vec2
	Depth  float64
}

// Vector returns Normal scaled by Depth.
func (p Penetration) Vector() mgl64.Vec2 {
	return p.Normal.Mul(p.Depth)
}

func (p Penetration) String() string {
	return fmt.Sprintf("Penetration{normal=(%g, %g), depth=%g}", p.Normal[0], p.Normal[1], p.Depth)
}
