// Package simulation implements the core entity kinds — Target, Sensor,
// Launcher, Missile, CommandPost — and the phase-ordered Engine that
// advances them tick by tick.
package simulation

import (
	"github.com/google/uuid"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

// EntityID is a stable, per-kind, monotonically increasing identifier.
// IDs are never reused within a run and are the sole basis for
// deterministic ordering and tie-breaking.
type EntityID uint64

// IDGenerator hands out ascending EntityIDs for one entity kind. The zero
// value is ready to use and issues IDs starting at 1.
type IDGenerator struct {
	next EntityID
}

// Next returns the next unused ID for this kind.
func (g *IDGenerator) Next() EntityID {
	g.next++
	return g.next
}

// TargetState is the disposition of a Target entity.
type TargetState int

const (
	TargetAlive TargetState = iota
	TargetKilled
	TargetBrokenThrough
	TargetDisappeared
)

func (s TargetState) String() string {
	switch s {
	case TargetAlive:
		return "alive"
	case TargetKilled:
		return "killed"
	case TargetBrokenThrough:
		return "broken-through"
	case TargetDisappeared:
		return "disappeared"
	default:
		return "unknown"
	}
}

// Consumed reports whether the target no longer participates in the
// simulation (killed, broken through, or left the region).
func (s TargetState) Consumed() bool {
	return s != TargetAlive
}

// Target is an incoming threat advancing on the command post at constant
// velocity until consumed.
type Target struct {
	ID   EntityID
	UUID uuid.UUID

	Pos core.Vec3
	Vel core.Vec3

	Endurance      int
	ArrivalRadiusM float64
	State          TargetState
}

// MissilePhase is the guidance/endgame phase of a Missile.
type MissilePhase int

const (
	MissileCruise MissilePhase = iota
	MissileEndgame
	MissileTerminated
)

func (p MissilePhase) String() string {
	switch p {
	case MissileCruise:
		return "cruise"
	case MissileEndgame:
		return "endgame"
	case MissileTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Sensor is a stateless spherical-range detector.
type Sensor struct {
	ID     EntityID
	UUID   uuid.UUID
	Pos    core.Vec3
	RangeM float64
}

// Launcher holds a magazine and a cooldown gate.
type Launcher struct {
	ID             EntityID
	UUID           uuid.UUID
	Pos            core.Vec3
	Magazine       int
	CooldownS      float64
	CooldownUntilT float64
}

// NewLauncher creates a launcher that starts cooled (able to fire
// immediately), per §6 policy.launcher_initially_cooled.
func NewLauncher(id EntityID, pos core.Vec3, magazine int, cooldownS float64) *Launcher {
	return &Launcher{
		ID:             id,
		UUID:           uuid.New(),
		Pos:            pos,
		Magazine:       magazine,
		CooldownS:      cooldownS,
		CooldownUntilT: negInf,
	}
}

const negInf = -1e18

// CanFire reports whether the launcher is able to fire at simulation time
// now.
func (l *Launcher) CanFire(now float64) bool {
	return l.Magazine > 0 && now >= l.CooldownUntilT
}

// MissilePerformance holds the per-missile kinematic and guidance limits.
type MissilePerformance struct {
	InitialSpeed             float64
	VMax                     float64
	AMax                     float64
	OmegaMax                 float64 // rad/s
	InterceptRadius          float64
	PNGain                   float64
	EndgameFactor            float64
	EndgameMissIncreaseTicks int
}

// Missile is a guided interceptor tracking a single target.
type Missile struct {
	ID         EntityID
	UUID       uuid.UUID
	TargetID   EntityID
	LauncherID EntityID

	Pos core.Vec3
	Vel core.Vec3

	Perf MissilePerformance

	PrevMissDist       float64
	MissIncreaseStreak int
	Phase              MissilePhase

	// FiredTick is the tick on which the missile was launched; it first
	// integrates on FiredTick+1 (newborn missiles skip phases 2-5 of the
	// tick they spawn in).
	FiredTick uint64
}

// CommandPost is the target-prioritization and weapon-assignment
// allocator. Its assignment ledger is the only shared mutable core state.
type CommandPost struct {
	PosXY          core.Vec3
	ArrivalRadiusM float64

	// Ledger maps target_id -> set of missile_ids currently in flight
	// against it. Authoritative for "does target t already have m
	// missiles committed?"
	Ledger map[EntityID]map[EntityID]struct{}
}

// NewCommandPost creates a command post with an empty assignment ledger.
func NewCommandPost(posXY core.Vec3, arrivalRadiusM float64) *CommandPost {
	return &CommandPost{
		PosXY:          posXY,
		ArrivalRadiusM: arrivalRadiusM,
		Ledger:         make(map[EntityID]map[EntityID]struct{}),
	}
}

// LedgerCount returns the number of missiles currently committed against
// target t.
func (cp *CommandPost) LedgerCount(t EntityID) int {
	return len(cp.Ledger[t])
}
