package simulation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/config"
)

// Preset is a named, built-in scenario available without an operator
// having to hand-author a YAML file.
type Preset struct {
	Name        string
	Description string
	Build       func() *config.Scenario
}

// presetRegistry holds the built-in scenario presets, keyed by name.
// Modeled directly on pkg/simulation.Registry, the kind-level registry
// this engine is discovered through: same Register/Get/List shape, one
// level down, for named scenario configurations instead of simulation
// kinds.
type presetRegistry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

var defaultPresets = &presetRegistry{presets: make(map[string]Preset)}

// RegisterPreset adds a preset to the default preset registry.
func RegisterPreset(p Preset) error {
	defaultPresets.mu.Lock()
	defer defaultPresets.mu.Unlock()

	if _, exists := defaultPresets.presets[p.Name]; exists {
		return fmt.Errorf("preset %s already registered", p.Name)
	}
	defaultPresets.presets[p.Name] = p
	return nil
}

// GetPreset returns a fresh scenario built from the named preset.
func GetPreset(name string) (*config.Scenario, error) {
	defaultPresets.mu.RLock()
	p, exists := defaultPresets.presets[name]
	defaultPresets.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("preset %s not found", name)
	}
	return p.Build(), nil
}

// ListPresets returns the registered presets sorted by name.
func ListPresets() []Preset {
	defaultPresets.mu.RLock()
	defer defaultPresets.mu.RUnlock()

	names := make([]string, 0, len(defaultPresets.presets))
	for name := range defaultPresets.presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, defaultPresets.presets[name])
	}
	return out
}

func init() {
	mustRegisterPreset(Preset{
		Name:        "single-leaker",
		Description: "One lightly-defended target against a single launcher, tuned so it reaches the arrival radius before a second missile can be committed — exercises the breakthrough path.",
		Build:       singleLeakerScenario,
	})
	mustRegisterPreset(Preset{
		Name:        "saturation-wave",
		Description: "A large multi-ring group spawned at once against a small launcher force, driving command-post demand above what can be serviced in a tick — exercises max_assignable_per_target and launcher contention.",
		Build:       saturationWaveScenario,
	})
}

func mustRegisterPreset(p Preset) {
	if err := RegisterPreset(p); err != nil {
		panic(err)
	}
}

// singleLeakerScenario places one target close enough to the command
// post, and far enough from the sole launcher, that it is expected to
// break through before being killed.
func singleLeakerScenario() *config.Scenario {
	s := config.DefaultScenario()
	s.FriendlyForces.Launchers = []config.LauncherSpec{
		{ID: "l1", Pos: [3]float64{2000, 0, 0}, MissilesLoaded: 1, CooldownS: 10},
	}
	s.EnemyForces.Groups = []config.GroupSpec{{
		ID: "leaker", SpawnTimeS: 0, CenterXY: [2]float64{3000, 0}, ZM: 500,
		Count: 1, RingSpacingM: 300, StartAngleDeg: 0, RingHalfOffset: false,
		EndurancePt: 1, VTarget: 400,
	}}
	s.Sim.TMaxS = 30
	return s
}

// saturationWaveScenario spawns a single large ring-filled group well
// beyond what the friendly force's magazine and max_assignable_per_target
// ceiling can service in one pass.
func saturationWaveScenario() *config.Scenario {
	s := config.DefaultScenario()
	s.Policy.MaxAssignablePerTarget = 1
	s.FriendlyForces.Launchers = []config.LauncherSpec{
		{ID: "l1", Pos: [3]float64{500, 0, 0}, MissilesLoaded: 6, CooldownS: 8},
		{ID: "l2", Pos: [3]float64{-500, 0, 0}, MissilesLoaded: 6, CooldownS: 8},
	}
	s.EnemyForces.Groups = []config.GroupSpec{{
		ID: "wave", SpawnTimeS: 0, CenterXY: [2]float64{40000, 0}, ZM: 1500,
		Count: 20, RingSpacingM: 250, StartAngleDeg: 0, RingHalfOffset: true,
		EndurancePt: 1, VTarget: 300,
	}}
	s.Sim.TMaxS = 300
	return s
}
