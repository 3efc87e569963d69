package simulation

import (
	"context"
	"testing"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

func basicEngine(t *testing.T) *Engine {
	t.Helper()
	world := testWorld()
	cp := NewCommandPost(core.Vec3{}, 50)
	sensors := []*Sensor{{ID: 1, Pos: core.Vec3{}, RangeM: 100000}}
	launchers := []*Launcher{NewLauncher(1, core.Vec3{X: 500}, 4, 1)}
	defaults := MissilePerformance{
		InitialSpeed: 800, VMax: 900, AMax: 300, OmegaMax: 40 * 3.14159265 / 180,
		InterceptRadius: 15, PNGain: 3.5, EndgameFactor: 2.0, EndgameMissIncreaseTicks: 3,
	}
	groups := map[uint64][]Group{
		0: {{ID: "g1", CenterXY: core.Vec3{X: 20000}, Z: 1000, Count: 1, RingSpacingM: 300, EnduranceHits: 1, VTarget: 250}},
	}
	return NewEngine(0.1, 10000, world, cp, 2, defaults, sensors, launchers, groups, nil)
}

func TestEngineSpawnsGroupOnSpawnTick(t *testing.T) {
	e := basicEngine(t)
	e.Step()
	if len(e.Targets) != 1 {
		t.Fatalf("expected 1 target spawned at tick 0, got %d", len(e.Targets))
	}
}

func TestEngineRunsToTermination(t *testing.T) {
	e := basicEngine(t)
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Done {
		t.Fatal("expected engine to report done")
	}

	for _, tgt := range e.Targets {
		if tgt.State == TargetAlive {
			t.Error("expected no alive targets remaining at termination")
		}
	}
}

func TestEngineRespectsContextCancellation(t *testing.T) {
	e := basicEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestEngineNeverOverAssignsAcrossTicks(t *testing.T) {
	e := basicEngine(t)
	e.MaxAssignable = 1
	for i := 0; i < 50 && !e.Done; i++ {
		e.Step()
		for tid, t2 := range e.Targets {
			if cp := e.CP; cp.LedgerCount(tid) > t2.Endurance {
				t.Fatalf("over-assigned target %d: ledger=%d endurance=%d", tid, cp.LedgerCount(tid), t2.Endurance)
			}
		}
	}
}
