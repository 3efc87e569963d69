package simulation

import (
	"testing"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

func defaultPerf() MissilePerformance {
	return MissilePerformance{
		InitialSpeed: 50, VMax: 900, AMax: 300, OmegaMax: 40 * 3.14159265 / 180,
		InterceptRadius: 15, PNGain: 3.5, EndgameFactor: 2.0, EndgameMissIncreaseTicks: 3,
	}
}

func TestMissileTerminatesWhenTargetConsumed(t *testing.T) {
	m := &Missile{Pos: core.Vec3{}, Vel: core.Vec3{X: 50}, Perf: defaultPerf(), Phase: MissileCruise}
	hit := m.Update(0.1, core.Vec3{X: 1000}, core.Vec3{}, true, testWorld())
	if hit {
		t.Error("expected no hit when target already consumed")
	}
	if m.Phase != MissileTerminated {
		t.Error("expected missile terminated")
	}
}

func TestMissileReportsHitWithinInterceptRadius(t *testing.T) {
	perf := defaultPerf()
	m := &Missile{Pos: core.Vec3{X: 990}, Vel: core.Vec3{X: 50}, Perf: perf, Phase: MissileCruise}
	// Target sits just inside intercept radius ahead of the missile.
	hit := m.Update(0.01, core.Vec3{X: 1000}, core.Vec3{}, false, testWorld())
	if !hit {
		t.Fatalf("expected hit, missile ended at %v", m.Pos)
	}
	if m.Phase != MissileTerminated {
		t.Error("expected missile terminated after hit")
	}
}

func TestMissileSelfDestructsAfterMissStreak(t *testing.T) {
	perf := defaultPerf()
	perf.EndgameMissIncreaseTicks = 2
	m := &Missile{Pos: core.Vec3{}, Vel: core.Vec3{X: 1}, Perf: perf, Phase: MissileCruise, PrevMissDist: 0}

	// A stationary, receding target (relative to the missile's fixed
	// position) inside endgame range with growing miss distance every tick.
	targetPos := core.Vec3{X: perf.EndgameFactor * perf.InterceptRadius * 0.5}
	world := testWorld()

	for i := 0; i < 5 && m.Phase != MissileTerminated; i++ {
		targetPos.Y += 1 // keep missile from ever closing to intercept radius
		m.Update(0.001, targetPos, core.Vec3{}, false, world)
	}

	if m.Phase != MissileTerminated {
		t.Error("expected missile to self-destruct after sustained miss-distance growth in endgame")
	}
}

func TestMissileSelfDestructsOnRegionExit(t *testing.T) {
	world := testWorld()
	m := &Missile{Pos: core.Vec3{X: world.XMax - 1}, Vel: core.Vec3{X: 10000}, Perf: defaultPerf(), Phase: MissileCruise}
	m.Update(1, core.Vec3{X: -1_000_000}, core.Vec3{}, false, world)
	if m.Phase != MissileTerminated {
		t.Error("expected missile to self-destruct after leaving the region cube")
	}
}

func TestMissileSpeedCappedAtVMaxThroughTurn(t *testing.T) {
	perf := defaultPerf()
	m := &Missile{Pos: core.Vec3{}, Vel: core.Vec3{X: 50}, Perf: perf, Phase: MissileCruise}
	// A hard-offset target forces a large commanded turn.
	m.Update(0.1, core.Vec3{X: 100, Y: 100000}, core.Vec3{}, false, testWorld())

	got := m.Vel.Norm()
	if got > perf.VMax+1e-6 {
		t.Errorf("expected speed capped at v_max, got %v", got)
	}
}
