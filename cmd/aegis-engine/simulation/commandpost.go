package simulation

import (
	"math"
	"sort"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

// PruneLedger drops dead missiles from the assignment ledger and removes
// any target entry left with no live missiles. Must run before priority
// ordering and demand accounting so neither sees stale commitments.
func (cp *CommandPost) PruneLedger(missiles map[EntityID]*Missile) {
	for tid, ms := range cp.Ledger {
		for mid := range ms {
			m, ok := missiles[mid]
			if !ok || m.Phase == MissileTerminated {
				delete(ms, mid)
			}
		}
		if len(ms) == 0 {
			delete(cp.Ledger, tid)
		}
	}
}

// targetTgo computes Tgo(t) = max(0, (‖r_xy‖ − arrival_radius_m) / |v_target|),
// where r_xy is the target's XY distance to the command post. A target
// with zero speed never reaches the post and sorts last.
func targetTgo(t *Target, cpPosXY core.Vec3) float64 {
	rXY := core.Vec3{X: t.Pos.X - cpPosXY.X, Y: t.Pos.Y - cpPosXY.Y}.HypotXY()
	speed := t.Vel.Norm()
	if speed <= 0 {
		return math.Inf(1)
	}
	tgo := (rXY - t.ArrivalRadiusM) / speed
	if tgo < 0 {
		return 0
	}
	return tgo
}

// PriorityOrder ranks detected, still-alive targets by ascending Tgo,
// tie-breaking by ascending XY distance to the command post and then by
// ascending ID, for a total order independent of map iteration.
func (cp *CommandPost) PriorityOrder(targets map[EntityID]*Target, detected map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(detected))
	for id := range detected {
		if t, ok := targets[id]; ok && t.State == TargetAlive {
			ids = append(ids, id)
		}
	}

	dist := func(id EntityID) float64 {
		t := targets[id]
		return core.Vec3{X: t.Pos.X - cp.PosXY.X, Y: t.Pos.Y - cp.PosXY.Y}.HypotXY()
	}

	sort.Slice(ids, func(i, j int) bool {
		ti, tj := targets[ids[i]], targets[ids[j]]
		tgoI, tgoJ := targetTgo(ti, cp.PosXY), targetTgo(tj, cp.PosXY)
		if tgoI != tgoJ {
			return tgoI < tgoJ
		}
		di, dj := dist(ids[i]), dist(ids[j])
		if di != dj {
			return di < dj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Demand returns how many additional missiles should be committed against
// t, given a performance-layer cap on simultaneous engagements. The
// authoritative cap is the tighter of the target's remaining endurance
// and maxAssignable — committing more than endurance can absorb wastes
// interceptors on a kill already accounted for.
func (cp *CommandPost) Demand(t *Target, maxAssignable int) int {
	cap := t.Endurance
	if maxAssignable < cap {
		cap = maxAssignable
	}
	need := cap - cp.LedgerCount(t.ID)
	if need < 0 {
		return 0
	}
	return need
}

// SelectLauncher picks the launcher to fire next against a target at
// targetPos: among launchers able to fire now and not already used this
// tick, the nearest, tie-broken by ascending ID. Returns nil if none
// qualify. usedThisTick may be nil.
func SelectLauncher(launchers []*Launcher, now float64, targetPos core.Vec3, usedThisTick map[EntityID]struct{}) *Launcher {
	var best *Launcher
	var bestDist float64
	for _, l := range launchers {
		if !l.CanFire(now) {
			continue
		}
		if _, used := usedThisTick[l.ID]; used {
			continue
		}
		d := targetPos.Sub(l.Pos).Norm()
		if best == nil || d < bestDist || (d == bestDist && l.ID < best.ID) {
			best = l
			bestDist = d
		}
	}
	return best
}

func (cp *CommandPost) assign(targetID, missileID EntityID) {
	if cp.Ledger[targetID] == nil {
		cp.Ledger[targetID] = make(map[EntityID]struct{})
	}
	cp.Ledger[targetID][missileID] = struct{}{}
}

// Plan walks the priority-ordered detected targets and, for each, launches
// up to its demand by repeatedly selecting the best available launcher.
// Each launch updates the ledger and the launcher's cooldown/magazine
// immediately, so later targets in the same call see reduced availability
// — this is what keeps the ledger from ever over-assigning a target.
func (cp *CommandPost) Plan(targets map[EntityID]*Target, detected map[EntityID]struct{}, launchers []*Launcher, missileIDs *IDGenerator, defaults MissilePerformance, maxAssignable int, now float64, tick uint64) []*Missile {
	var launched []*Missile
	usedThisTick := make(map[EntityID]struct{})
	for _, tid := range cp.PriorityOrder(targets, detected) {
		t := targets[tid]
		need := cp.Demand(t, maxAssignable)
		for i := 0; i < need; i++ {
			l := SelectLauncher(launchers, now, t.Pos, usedThisTick)
			if l == nil {
				break
			}
			m := l.Launch(missileIDs.Next(), t, defaults, now, tick)
			usedThisTick[l.ID] = struct{}{}
			cp.assign(t.ID, m.ID)
			launched = append(launched, m)
		}
	}
	return launched
}
