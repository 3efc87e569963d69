package simulation

import (
	"github.com/google/uuid"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

// Launch fires a new missile at target, decrements the magazine, and sets
// the cooldown gate. The caller must have already confirmed CanFire(now).
// If the launcher and target are collocated, the launch direction falls
// back to +X per the degenerate-geometry fallback.
func (l *Launcher) Launch(id EntityID, target *Target, defaults MissilePerformance, now float64, tick uint64) *Missile {
	dir := target.Pos.Sub(l.Pos).Unit()
	if dir == (core.Vec3{}) {
		dir = core.Vec3{X: 1}
	}

	l.Magazine--
	l.CooldownUntilT = now + l.CooldownS

	return &Missile{
		ID:         id,
		UUID:       uuid.New(),
		TargetID:   target.ID,
		LauncherID: l.ID,
		Pos:        l.Pos,
		Vel:        dir.Scale(defaults.InitialSpeed),
		Perf:       defaults,
		Phase:      MissileCruise,
		FiredTick:  tick,
	}
}
