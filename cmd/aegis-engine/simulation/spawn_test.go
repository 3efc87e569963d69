package simulation

import (
	"testing"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

func TestSpawnGroupProducesRequestedCount(t *testing.T) {
	g := Group{
		ID: "g1", CenterXY: core.Vec3{X: 10000}, Z: 1000, Count: 7,
		RingSpacingM: 300, EnduranceHits: 1, VTarget: 200,
	}
	ids := &IDGenerator{}
	members := SpawnGroup(g, ids, core.Vec3{}, 50)

	if len(members) != 7 {
		t.Fatalf("expected 7 members, got %d", len(members))
	}
	for _, m := range members {
		if m.Pos.Z != 1000 {
			t.Errorf("expected member altitude 1000, got %v", m.Pos.Z)
		}
	}
}

func TestSpawnGroupSingleMemberUsesInnermostRing(t *testing.T) {
	g := Group{
		ID: "g1", CenterXY: core.Vec3{}, Z: 0, Count: 1,
		RingSpacingM: 100, EnduranceHits: 1, VTarget: 200,
	}
	ids := &IDGenerator{}
	members := SpawnGroup(g, ids, core.Vec3{X: 1_000_000}, 50)

	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	d := members[0].Pos.Sub(g.CenterXY).Norm()
	if d < 99.999 || d > 100.001 {
		t.Errorf("expected the sole member on ring 1 (radius 100), got radius %v", d)
	}
}

func TestSpawnGroupRingHalfOffsetRotatesOuterRings(t *testing.T) {
	g := Group{
		ID: "g1", CenterXY: core.Vec3{}, Z: 0, Count: 1 + 2,
		RingSpacingM: 100, EnduranceHits: 1, VTarget: 200, RingHalfOffset: true,
	}
	ids := &IDGenerator{}
	members := SpawnGroup(g, ids, core.Vec3{X: 1_000_000}, 50)
	if len(members) != 3 {
		t.Fatalf("expected 3 members (1 on ring 1, 2 on ring 2), got %d", len(members))
	}
	// Ring 2 holds 2 members, so the half offset rotates it by π/2: its
	// first member sits at (0, 200) instead of (200, 0).
	if p := members[1].Pos; p.X < -1e-6 || p.X > 1e-6 || p.Y < 199.999 || p.Y > 200.001 {
		t.Errorf("expected first ring-2 member at (0, 200), got %v", p)
	}
}

func TestSpawnGroupAssignsAscendingIDs(t *testing.T) {
	g := Group{ID: "g1", Count: 4, RingSpacingM: 50, EnduranceHits: 1, VTarget: 100}
	ids := &IDGenerator{}
	members := SpawnGroup(g, ids, core.Vec3{X: 100}, 10)
	for i := 1; i < len(members); i++ {
		if members[i].ID <= members[i-1].ID {
			t.Fatalf("expected strictly ascending IDs, got %v then %v", members[i-1].ID, members[i].ID)
		}
	}
}
