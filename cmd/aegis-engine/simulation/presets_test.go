package simulation

import "testing"

func TestBuiltinPresetsAreRegisteredAndValid(t *testing.T) {
	names := []string{"single-leaker", "saturation-wave"}
	for _, name := range names {
		scenario, err := GetPreset(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		if err := scenario.Validate(); err != nil {
			t.Errorf("preset %s built an invalid scenario: %v", name, err)
		}
	}
}

func TestGetPresetUnknownNameErrors(t *testing.T) {
	if _, err := GetPreset("does-not-exist"); err == nil {
		t.Fatal("expected an error for an unregistered preset")
	}
}

func TestGetPresetReturnsIndependentScenarios(t *testing.T) {
	a, err := GetPreset("single-leaker")
	if err != nil {
		t.Fatalf("GetPreset: %v", err)
	}
	b, err := GetPreset("single-leaker")
	if err != nil {
		t.Fatalf("GetPreset: %v", err)
	}
	a.Sim.TMaxS = 999
	if b.Sim.TMaxS == 999 {
		t.Fatal("expected each GetPreset call to build a fresh scenario, not share state")
	}
}

func TestRegisterPresetRejectsDuplicateName(t *testing.T) {
	p := Preset{Name: "single-leaker", Description: "dup", Build: singleLeakerScenario}
	if err := RegisterPreset(p); err == nil {
		t.Fatal("expected an error registering a duplicate preset name")
	}
}

func TestListPresetsSortedByName(t *testing.T) {
	presets := ListPresets()
	for i := 1; i < len(presets); i++ {
		if presets[i].Name < presets[i-1].Name {
			t.Fatalf("expected presets sorted by name, got %q after %q", presets[i].Name, presets[i-1].Name)
		}
	}
}
