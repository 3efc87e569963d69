package simulation

import (
	"math"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

// Update runs the mandatory six-step per-tick missile update: guidance,
// acceleration saturation, velocity integration + saturation, turn-rate
// limited attitude update, position integration + Z clamp, and collision /
// self-destruct evaluation. targetPos and targetVel are the target's
// post-movement (end of phase 2) snapshot; targetConsumed reports whether
// the target was marked consumed earlier in this tick. Returns true if
// this update reports a hit against the target.
func (m *Missile) Update(dt float64, targetPos, targetVel core.Vec3, targetConsumed bool, world WorldBounds) (hit bool) {
	if m.Phase == MissileTerminated {
		return false
	}

	// (a) guidance
	r := targetPos.Sub(m.Pos)
	vRel := targetVel.Sub(m.Vel)
	aCmd := core.PNCommand(r, vRel, m.Perf.PNGain)

	// (b) acceleration saturation
	a := core.Sat(aCmd, m.Perf.AMax)

	// (c) velocity integration, then speed saturation
	vIntegrated := core.Sat(m.Vel.Add(a.Scale(dt)), m.Perf.VMax)

	// (d) attitude update: turn-rate-limited rotation applied after the
	// speed clip, so an over-commanded turn cannot leak across it.
	finalSpeed := vIntegrated.Norm()
	oldDir := m.Vel.Unit()
	if finalSpeed > 0 && oldDir != (core.Vec3{}) {
		m.Vel = core.ClipTurn(oldDir.Scale(finalSpeed), vIntegrated, m.Perf.OmegaMax*dt)
	} else {
		m.Vel = vIntegrated
	}

	if !finiteVec(m.Vel) {
		m.Phase = MissileTerminated
		return false
	}

	// (e) position integration, then Z clamp
	m.Pos = m.Pos.Add(m.Vel.Scale(dt))
	if m.Pos.Z < world.ZMin {
		m.Pos.Z = world.ZMin
	}
	if m.Pos.Z > world.ZMax {
		m.Pos.Z = world.ZMax
	}

	if !finiteVec(m.Pos) {
		m.Phase = MissileTerminated
		return false
	}

	// (f) collision & self-destruct evaluation
	return m.evaluateCollision(targetPos, targetConsumed, world)
}

func (m *Missile) evaluateCollision(targetPos core.Vec3, targetConsumed bool, world WorldBounds) bool {
	if targetConsumed {
		m.Phase = MissileTerminated
		return false
	}

	d := targetPos.Sub(m.Pos).Norm()
	r := m.Perf.InterceptRadius
	rEnd := m.Perf.EndgameFactor * r

	var hit bool
	switch {
	case d <= r:
		m.Phase = MissileTerminated
		hit = true
	case d <= rEnd:
		m.Phase = MissileEndgame
		if d > m.PrevMissDist {
			m.MissIncreaseStreak++
		} else {
			m.MissIncreaseStreak = 0
		}
		if m.MissIncreaseStreak >= m.Perf.EndgameMissIncreaseTicks {
			m.Phase = MissileTerminated
		}
	default:
		if m.Pos.X < world.XMin || m.Pos.X > world.XMax || m.Pos.Y < world.YMin || m.Pos.Y > world.YMax {
			m.Phase = MissileTerminated
		}
	}

	m.PrevMissDist = d
	return hit
}

func finiteVec(v core.Vec3) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
