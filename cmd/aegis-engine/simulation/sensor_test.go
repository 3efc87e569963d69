package simulation

import (
	"testing"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

func TestSensorDetectWithinRange(t *testing.T) {
	s := &Sensor{ID: 1, Pos: core.Vec3{}, RangeM: 1000}
	targets := map[EntityID]*Target{
		1: {ID: 1, Pos: core.Vec3{X: 500}, State: TargetAlive},
		2: {ID: 2, Pos: core.Vec3{X: 5000}, State: TargetAlive},
	}

	detected := s.Detect(targets)
	if _, ok := detected[1]; !ok {
		t.Error("expected target 1 detected")
	}
	if _, ok := detected[2]; ok {
		t.Error("expected target 2 out of range")
	}
}

func TestSensorIgnoresConsumedTargets(t *testing.T) {
	s := &Sensor{ID: 1, Pos: core.Vec3{}, RangeM: 1000}
	targets := map[EntityID]*Target{
		1: {ID: 1, Pos: core.Vec3{X: 10}, State: TargetBrokenThrough},
	}
	if len(s.Detect(targets)) != 0 {
		t.Error("expected no detections of consumed targets")
	}
}

func TestUnionDetectionsMergesSensors(t *testing.T) {
	sensors := []*Sensor{
		{ID: 1, Pos: core.Vec3{X: -1000}, RangeM: 1100},
		{ID: 2, Pos: core.Vec3{X: 1000}, RangeM: 1100},
	}
	targets := map[EntityID]*Target{
		1: {ID: 1, Pos: core.Vec3{X: -1000}, State: TargetAlive},
		2: {ID: 2, Pos: core.Vec3{X: 1000}, State: TargetAlive},
		3: {ID: 3, Pos: core.Vec3{X: 50000}, State: TargetAlive},
	}
	union := UnionDetections(sensors, targets)
	if len(union) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(union))
	}
}
