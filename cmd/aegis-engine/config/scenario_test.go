package config

import "testing"

func TestDefaultScenarioValidates(t *testing.T) {
	s := DefaultScenario()
	if err := s.Validate(); err != nil {
		t.Fatalf("default scenario should validate, got: %v", err)
	}
}

func TestValidateRejectsBadDt(t *testing.T) {
	s := DefaultScenario()
	s.Sim.DtS = 0
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for zero dt_s")
	}
}

func TestValidateRejectsZeroWidthRegion(t *testing.T) {
	s := DefaultScenario()
	s.World.RegionRect.XMax = s.World.RegionRect.XMin
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for non-positive region width")
	}
}

func TestValidateRejectsOutOfRangeGain(t *testing.T) {
	s := DefaultScenario()
	s.Policy.MissileGuidance.N = 2.0
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for guidance gain outside [3,4]")
	}
}

func TestValidateRequiresSensorsAndLaunchers(t *testing.T) {
	s := DefaultScenario()
	s.FriendlyForces.Sensors = nil
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for missing sensors")
	}

	s = DefaultScenario()
	s.FriendlyForces.Launchers = nil
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for missing launchers")
	}
}

func TestValidateRejectsZeroCountGroup(t *testing.T) {
	s := DefaultScenario()
	s.EnemyForces.Groups[0].Count = 0
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for zero-count group")
	}
}

func TestMergeWithEnvironment(t *testing.T) {
	t.Setenv("AEGIS_T_MAX_S", "300")
	t.Setenv("AEGIS_MAX_ASSIGNABLE_PER_TARGET", "3")

	s := DefaultScenario()
	MergeWithEnvironment(s)

	if s.Sim.TMaxS != 300 {
		t.Errorf("expected t_max_s overridden to 300, got %v", s.Sim.TMaxS)
	}
	if s.Policy.MaxAssignablePerTarget != 3 {
		t.Errorf("expected max_assignable_per_target overridden to 3, got %d", s.Policy.MaxAssignablePerTarget)
	}
}

func TestOmegaMaxRadConversion(t *testing.T) {
	k := KinematicsSpec{OmegaMaxDegS: 180}
	got := k.OmegaMaxRad()
	want := 3.14159265358979
	if got < want-1e-6 || got > want+1e-6 {
		t.Errorf("expected ~pi radians, got %v", got)
	}
}
