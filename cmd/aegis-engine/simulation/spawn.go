package simulation

import (
	"math"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

// Group is a formation definition: count members placed on concentric
// rings around center_xy at altitude z, each launched toward the command
// post at vTarget.
type Group struct {
	ID             string
	SpawnTick      uint64
	CenterXY       core.Vec3
	Z              float64
	Count          int
	RingSpacingM   float64
	StartAngleRad  float64
	RingHalfOffset bool
	EnduranceHits  int
	VTarget        float64
}

// ringCapacity returns the member count for ring k (1-indexed): the
// number of equally-spaced slots a ring can hold grows with its
// circumference, so capacity scales linearly with k.
func ringCapacity(k int) int {
	return k
}

// SpawnGroup materializes a group's members by the ring-filling rule:
// rings at radius r_k = k·ringSpacing for k=1,2,…, filled innermost
// outward; within ring k, members sit at equal angular spacing 2π/n_k
// starting at startAngle, rotated by π/n_k on rings k≥2 when
// ringHalfOffset is set. Each member heads toward destinationXY at
// constant speed vTarget, altitude held at g.Z.
func SpawnGroup(g Group, ids *IDGenerator, destinationXY core.Vec3, arrivalRadiusM float64) []*Target {
	targets := make([]*Target, 0, g.Count)

	remaining := g.Count
	ring := 1
	for remaining > 0 {
		n := ringCapacity(ring)
		if n > remaining {
			n = remaining
		}

		radius := float64(ring) * g.RingSpacingM
		angleStep := 2 * math.Pi / float64(n)
		angleOffset := g.StartAngleRad
		if g.RingHalfOffset && ring >= 2 {
			angleOffset += math.Pi / float64(n)
		}

		for i := 0; i < n; i++ {
			theta := angleOffset + float64(i)*angleStep
			pos := core.Vec3{
				X: g.CenterXY.X + radius*math.Cos(theta),
				Y: g.CenterXY.Y + radius*math.Sin(theta),
				Z: g.Z,
			}
			targets = append(targets, NewTarget(ids.Next(), pos, g.VTarget, destinationXY, g.EnduranceHits, arrivalRadiusM))
		}

		remaining -= n
		ring++
	}

	return targets
}
