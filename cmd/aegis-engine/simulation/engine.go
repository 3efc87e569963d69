package simulation

import (
	"context"
	"sort"
)

// EventSink observes engine lifecycle events for reporting. All methods
// are optional to implement meaningfully; NopEventSink is a ready-made
// no-op for callers that don't need one.
type EventSink interface {
	GroupSpawned(tick uint64, groupID string, targetIDs []EntityID)
	TargetBreakthrough(tick uint64, id EntityID)
	TargetDisappeared(tick uint64, id EntityID)
	TargetKilled(tick uint64, id EntityID, hits int)
	MissileLaunched(tick uint64, m *Missile)
	MissileHit(tick uint64, missileID, targetID EntityID)
	MissileSelfDestruct(tick uint64, missileID EntityID)
}

// NopEventSink discards every event.
type NopEventSink struct{}

func (NopEventSink) GroupSpawned(uint64, string, []EntityID) {}
func (NopEventSink) TargetBreakthrough(uint64, EntityID)     {}
func (NopEventSink) TargetDisappeared(uint64, EntityID)      {}
func (NopEventSink) TargetKilled(uint64, EntityID, int)      {}
func (NopEventSink) MissileLaunched(uint64, *Missile)        {}
func (NopEventSink) MissileHit(uint64, EntityID, EntityID)   {}
func (NopEventSink) MissileSelfDestruct(uint64, EntityID)    {}

// Engine holds all live entity state and advances it one tick at a time
// in the mandatory phase order: spawn, target, missile, apply-hits,
// sensor, command post, advance/terminate.
type Engine struct {
	DtS       float64
	TMaxTicks uint64
	World     WorldBounds

	CP              *CommandPost
	MaxAssignable   int
	MissileDefaults MissilePerformance

	Targets   map[EntityID]*Target
	Sensors   []*Sensor
	Launchers []*Launcher
	Missiles  map[EntityID]*Missile

	TargetIDs  *IDGenerator
	MissileIDs *IDGenerator

	PendingGroups map[uint64][]Group

	Tick  uint64
	Done  bool
	Sink  EventSink
}

// NewEngine builds an Engine ready to run from tick 0. groups is indexed
// by spawn tick; the map is consumed in place (entries are deleted as
// groups spawn).
func NewEngine(dtS float64, tMaxTicks uint64, world WorldBounds, cp *CommandPost, maxAssignable int, defaults MissilePerformance, sensors []*Sensor, launchers []*Launcher, groups map[uint64][]Group, sink EventSink) *Engine {
	if sink == nil {
		sink = NopEventSink{}
	}
	return &Engine{
		DtS:             dtS,
		TMaxTicks:       tMaxTicks,
		World:           world,
		CP:              cp,
		MaxAssignable:   maxAssignable,
		MissileDefaults: defaults,
		Targets:         make(map[EntityID]*Target),
		Sensors:         sensors,
		Launchers:       launchers,
		Missiles:        make(map[EntityID]*Missile),
		TargetIDs:       &IDGenerator{},
		MissileIDs:      &IDGenerator{},
		PendingGroups:   groups,
		Sink:            sink,
	}
}

func sortedTargetIDs(m map[EntityID]*Target) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedMissileIDs(m map[EntityID]*Missile) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Step runs exactly one tick: all seven substeps complete before this
// call returns.
func (e *Engine) Step() {
	now := float64(e.Tick) * e.DtS

	// 1. Spawn
	if groups, ok := e.PendingGroups[e.Tick]; ok {
		for _, g := range groups {
			members := SpawnGroup(g, e.TargetIDs, e.CP.PosXY, e.CP.ArrivalRadiusM)
			ids := make([]EntityID, 0, len(members))
			for _, t := range members {
				e.Targets[t.ID] = t
				ids = append(ids, t.ID)
			}
			e.Sink.GroupSpawned(e.Tick, g.ID, ids)
		}
		delete(e.PendingGroups, e.Tick)
	}

	// 2. Target phase
	for _, id := range sortedTargetIDs(e.Targets) {
		t := e.Targets[id]
		wasAlive := t.State == TargetAlive
		t.Tick(e.DtS, e.CP.PosXY, e.World)
		if wasAlive && t.State == TargetBrokenThrough {
			e.Sink.TargetBreakthrough(e.Tick, id)
		} else if wasAlive && t.State == TargetDisappeared {
			e.Sink.TargetDisappeared(e.Tick, id)
		}
	}

	// 3. Missile phase — accumulate hit reports per target, keyed so
	// aggregation in step 4 is independent of missile iteration order.
	hitsByTarget := make(map[EntityID]int)
	for _, id := range sortedMissileIDs(e.Missiles) {
		m := e.Missiles[id]
		if m.Phase == MissileTerminated {
			continue
		}
		if m.FiredTick == e.Tick {
			// Newborn missiles skip phases 2-5 of their spawn tick.
			continue
		}
		target, ok := e.Targets[m.TargetID]
		var hit bool
		if !ok {
			hit = false
			m.Phase = MissileTerminated
		} else {
			hit = m.Update(e.DtS, target.Pos, target.Vel, target.State.Consumed(), e.World)
		}
		if hit {
			hitsByTarget[m.TargetID]++
			e.Sink.MissileHit(e.Tick, id, m.TargetID)
		} else if m.Phase == MissileTerminated {
			e.Sink.MissileSelfDestruct(e.Tick, id)
		}
	}

	// 4. Apply hits
	for tid, count := range hitsByTarget {
		t, ok := e.Targets[tid]
		if !ok {
			continue
		}
		t.Endurance -= count
		if t.Endurance <= 0 {
			t.State = TargetKilled
			e.Sink.TargetKilled(e.Tick, tid, count)
		}
	}
	for _, id := range sortedMissileIDs(e.Missiles) {
		m := e.Missiles[id]
		if m.Phase == MissileTerminated {
			continue
		}
		if target, ok := e.Targets[m.TargetID]; !ok || target.State.Consumed() {
			m.Phase = MissileTerminated
		}
	}

	// 5. Sensor phase
	detected := UnionDetections(e.Sensors, e.Targets)

	// 6. Command post phase
	e.CP.PruneLedger(e.Missiles)
	launched := e.CP.Plan(e.Targets, detected, e.Launchers, e.MissileIDs, e.MissileDefaults, e.MaxAssignable, now, e.Tick)
	for _, m := range launched {
		e.Missiles[m.ID] = m
		e.Sink.MissileLaunched(e.Tick, m)
	}

	// 7. Advance & terminate
	e.Tick++
	e.Done = e.Tick >= e.TMaxTicks || (!e.anyAliveTargets() && len(e.PendingGroups) == 0)
}

func (e *Engine) anyAliveTargets() bool {
	for _, t := range e.Targets {
		if t.State == TargetAlive {
			return true
		}
	}
	return false
}

// Run steps the engine to termination or until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	for !e.Done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.Step()
	}
	return nil
}
