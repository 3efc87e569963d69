package simulation

import (
	"testing"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
)

func TestNewLauncherStartsCooled(t *testing.T) {
	l := NewLauncher(1, core.Vec3{}, 4, 5)
	if !l.CanFire(0) {
		t.Error("expected launcher able to fire at t=0")
	}
}

func TestLaunchDecrementsMagazineAndSetsCooldown(t *testing.T) {
	l := NewLauncher(1, core.Vec3{}, 2, 5)
	target := &Target{ID: 1, Pos: core.Vec3{X: 1000}}
	defaults := MissilePerformance{InitialSpeed: 100}

	m := l.Launch(1, target, defaults, 10, 100)

	if l.Magazine != 1 {
		t.Errorf("expected magazine 1, got %d", l.Magazine)
	}
	if l.CanFire(10) {
		t.Error("expected launcher on cooldown immediately after firing")
	}
	if !l.CanFire(15) {
		t.Error("expected launcher ready again after cooldown elapses")
	}
	if got := m.Vel.Norm(); got < 99.999 || got > 100.001 {
		t.Errorf("expected missile speed 100, got %v", got)
	}
}

func TestLaunchDegenerateGeometryFallsBackToPlusX(t *testing.T) {
	l := NewLauncher(1, core.Vec3{X: 10, Y: 20, Z: 30}, 1, 5)
	target := &Target{ID: 1, Pos: l.Pos}
	defaults := MissilePerformance{InitialSpeed: 50}

	m := l.Launch(1, target, defaults, 0, 0)

	if m.Vel != (core.Vec3{X: 50}) {
		t.Errorf("expected +X fallback velocity, got %v", m.Vel)
	}
}
