package trails

import (
	"math"
	"math/rand"
)

// Canvas bounds and placement constraints, in the reference frame the
// presentation layer scales from.
const (
	CanvasWidth   = 800.0
	CanvasHeight  = 500.0
	MinSeparation = 80.0
	// maxPlacementAttempts bounds rejection sampling per node. When the
	// cap is hit the last candidate is accepted so placement always
	// terminates, at the cost of occasionally violating the separation.
	maxPlacementAttempts = 100
)

// Point is a position in the reference canvas frame.
type Point struct {
	X float64
	Y float64
}

// GeneratePositions places n nodes by rejection sampling: random
// candidates inside the canvas are accepted only if they keep
// MinSeparation from every already-placed node.
func GeneratePositions(n int, rng *rand.Rand) []Point {
	placed := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		var candidate Point
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			candidate = Point{
				X: rng.Float64() * CanvasWidth,
				Y: rng.Float64() * CanvasHeight,
			}
			if separated(candidate, placed) {
				break
			}
		}
		placed = append(placed, candidate)
	}
	return placed
}

// separated reports whether p keeps MinSeparation from all of placed.
func separated(p Point, placed []Point) bool {
	for _, q := range placed {
		dx := p.X - q.X
		dy := p.Y - q.Y
		if math.Hypot(dx, dy) < MinSeparation {
			return false
		}
	}
	return true
}
