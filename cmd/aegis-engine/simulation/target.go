package simulation

import (
	"github.com/google/uuid"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

// NewTarget spawns a target at spawnPos heading toward destination (the
// command post's XY position) at constant 3-D speed, altitude held at the
// spawn Z. If spawnPos and destination coincide in XY, the target is given
// a zero XY velocity component (its XY distance to the destination is then
// zero, so its first tick judges it broken-through when the destination is
// the command post).
func NewTarget(id EntityID, spawnPos core.Vec3, speed float64, destinationXY core.Vec3, endurance int, arrivalRadiusM float64) *Target {
	dir := core.Vec3{X: destinationXY.X - spawnPos.X, Y: destinationXY.Y - spawnPos.Y}.Unit()
	vel := dir.Scale(speed)

	return &Target{
		ID:             id,
		UUID:           uuid.New(),
		Pos:            spawnPos,
		Vel:            vel,
		Endurance:      endurance,
		ArrivalRadiusM: arrivalRadiusM,
		State:          TargetAlive,
	}
}

// WorldBounds describes the axis-aligned simulation cube.
type WorldBounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// Tick advances the target by vel·dt, clamps Z to the world bounds, and
// evaluates disposition in the mandatory order: endurance exhaustion (a
// no-op here — the Engine applies hits and marks killed before this phase
// runs), then breakthrough, then region-exit. A consumed target is left
// unchanged.
func (t *Target) Tick(dt float64, cpPosXY core.Vec3, world WorldBounds) {
	if t.State.Consumed() {
		return
	}

	t.Pos = t.Pos.Add(t.Vel.Scale(dt))
	if t.Pos.Z < world.ZMin {
		t.Pos.Z = world.ZMin
	}
	if t.Pos.Z > world.ZMax {
		t.Pos.Z = world.ZMax
	}

	if t.Endurance <= 0 {
		t.State = TargetKilled
		return
	}

	dx, dy := t.Pos.X-cpPosXY.X, t.Pos.Y-cpPosXY.Y
	if (core.Vec3{X: dx, Y: dy}).HypotXY() <= t.ArrivalRadiusM {
		t.State = TargetBrokenThrough
		return
	}

	if t.Pos.X < world.XMin || t.Pos.X > world.XMax || t.Pos.Y < world.YMin || t.Pos.Y > world.YMax {
		t.State = TargetDisappeared
		return
	}
}
