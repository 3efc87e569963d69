package reporting

import (
	"testing"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
)

func TestGenerateTalliesSummaryFromEvents(t *testing.T) {
	log := NewEventLog("test-run")
	log.GroupSpawned(0, "g1", []simulation.EntityID{1, 2})
	log.MissileLaunched(1, &simulation.Missile{ID: 10, LauncherID: 1, TargetID: 1})
	log.MissileHit(2, 10, 1)
	log.TargetKilled(2, 1, 1)
	log.TargetBreakthrough(3, 2)

	e := &simulation.Engine{
		Targets: map[simulation.EntityID]*simulation.Target{
			1: {ID: 1, State: simulation.TargetKilled},
			2: {ID: 2, State: simulation.TargetBrokenThrough},
		},
		Launchers: []*simulation.Launcher{{ID: 1, Magazine: 3}},
		Tick:      4,
	}

	gen := NewAARGenerator(AARConfig{OutputDir: t.TempDir()})
	aar := gen.Generate(log, e)

	if aar.Summary.TargetsSpawned != 2 {
		t.Errorf("expected 2 targets spawned, got %d", aar.Summary.TargetsSpawned)
	}
	if aar.Summary.TargetsKilled != 1 {
		t.Errorf("expected 1 target killed, got %d", aar.Summary.TargetsKilled)
	}
	if aar.Summary.TargetsBrokeThrough != 1 {
		t.Errorf("expected 1 breakthrough, got %d", aar.Summary.TargetsBrokeThrough)
	}
	if aar.Summary.MissilesLaunched != 1 || aar.Summary.MissilesHit != 1 {
		t.Errorf("expected 1 launch and 1 hit, got %+v", aar.Summary)
	}
	if len(aar.Targets) != 2 {
		t.Fatalf("expected 2 target outcomes, got %d", len(aar.Targets))
	}
	if len(aar.Launchers) != 1 || aar.Launchers[0].MissilesFired != 1 {
		t.Errorf("expected launcher 1 credited with 1 fire, got %+v", aar.Launchers)
	}
}

func TestWriteJSONProducesFile(t *testing.T) {
	log := NewEventLog("test-run-2")
	e := &simulation.Engine{Targets: map[simulation.EntityID]*simulation.Target{}}
	gen := NewAARGenerator(AARConfig{OutputDir: t.TempDir()})
	aar := gen.Generate(log, e)

	path, err := gen.WriteJSON(aar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected a non-empty output path")
	}
}
