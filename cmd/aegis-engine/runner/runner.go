// Package runner wires scenario configuration, the engagement engine, and
// reporting together behind the pkg/simulation.Simulation interface so the
// engagement core can be discovered and run by the CLI.
package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/config"
	"github.com/aegis-sim/aegis/cmd/aegis-engine/core"
	"github.com/aegis-sim/aegis/cmd/aegis-engine/reporting"
	"github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
	"github.com/aegis-sim/aegis/pkg/logger"
	pkgsim "github.com/aegis-sim/aegis/pkg/simulation"
)

// EngagementRunner adapts a Scenario into a running Engine and satisfies
// pkg/simulation.Simulation.
type EngagementRunner struct {
	mu       sync.Mutex
	scenario *config.Scenario
	engine   *simulation.Engine
	log      *reporting.EventLog
	aarDir   string
	stopped  bool
}

// NewEngagementRunner returns a fresh, unconfigured runner.
func NewEngagementRunner() pkgsim.Simulation {
	return &EngagementRunner{}
}

func (r *EngagementRunner) Name() string { return "Layered Air Defense Engagement" }

func (r *EngagementRunner) Description() string {
	return "Deterministic tick-driven engagement of incoming targets by sensor-cued, PN-guided interceptor missiles"
}

// Configure accepts "scenario_path" (string, optional — falls back to the
// built-in default scenario), "preset" (string, optional — a name
// registered in simulation.ListPresets; takes precedence over
// scenario_path when both are set), and "aar_output_dir" (string,
// optional).
func (r *EngagementRunner) Configure(params map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var scenario *config.Scenario
	if preset, _ := params["preset"].(string); preset != "" {
		built, err := simulation.GetPreset(preset)
		if err != nil {
			return fmt.Errorf("configuring engagement runner: %w", err)
		}
		config.MergeWithEnvironment(built)
		if err := built.Validate(); err != nil {
			return fmt.Errorf("invalid preset %q: %w", preset, err)
		}
		scenario = built
	} else {
		path, _ := params["scenario_path"].(string)
		loaded, err := config.LoadConfigOrDefault(path)
		if err != nil {
			return fmt.Errorf("configuring engagement runner: %w", err)
		}
		scenario = loaded
	}

	if overrides, ok := params["overrides"].(map[string]interface{}); ok {
		config.MergeWithCLIOverrides(scenario, overrides)
		if err := scenario.Validate(); err != nil {
			return fmt.Errorf("invalid scenario after overrides: %w", err)
		}
	}

	r.scenario = scenario
	r.aarDir, _ = params["aar_output_dir"].(string)
	if r.aarDir == "" {
		r.aarDir = "aar-reports"
	}
	return nil
}

func buildEngine(s *config.Scenario, sink simulation.EventSink) *simulation.Engine {
	world := simulation.WorldBounds{
		XMin: s.World.RegionRect.XMin, XMax: s.World.RegionRect.XMax,
		YMin: s.World.RegionRect.YMin, YMax: s.World.RegionRect.YMax,
		ZMin: s.World.ZLimitsM[0], ZMax: s.World.ZLimitsM[1],
	}
	cp := simulation.NewCommandPost(
		core.Vec3{X: s.CommandPost.Position.XY[0], Y: s.CommandPost.Position.XY[1]},
		s.CommandPost.ArrivalRadiusM,
	)

	sensors := make([]*simulation.Sensor, 0, len(s.FriendlyForces.Sensors))
	sensorIDs := &simulation.IDGenerator{}
	for _, spec := range s.FriendlyForces.Sensors {
		sensors = append(sensors, &simulation.Sensor{
			ID:     sensorIDs.Next(),
			UUID:   uuid.New(),
			Pos:    core.Vec3{X: spec.Pos[0], Y: spec.Pos[1], Z: spec.Pos[2]},
			RangeM: spec.RangeM,
		})
	}

	launcherIDs := &simulation.IDGenerator{}
	launchers := make([]*simulation.Launcher, 0, len(s.FriendlyForces.Launchers))
	for _, spec := range s.FriendlyForces.Launchers {
		launchers = append(launchers, simulation.NewLauncher(
			launcherIDs.Next(), core.Vec3{X: spec.Pos[0], Y: spec.Pos[1], Z: spec.Pos[2]},
			spec.MissilesLoaded, spec.CooldownS,
		))
	}

	dt := s.Sim.DtS
	groups := make(map[uint64][]simulation.Group)
	for _, gs := range s.EnemyForces.Groups {
		tick := uint64(gs.SpawnTimeS / dt)
		groups[tick] = append(groups[tick], simulation.Group{
			ID:             gs.ID,
			SpawnTick:      tick,
			CenterXY:       core.Vec3{X: gs.CenterXY[0], Y: gs.CenterXY[1]},
			Z:              gs.ZM,
			Count:          gs.Count,
			RingSpacingM:   gs.RingSpacingM,
			StartAngleRad:  gs.StartAngleDeg * (3.14159265358979 / 180),
			RingHalfOffset: gs.RingHalfOffset,
			EnduranceHits:  gs.EndurancePt,
			VTarget:        gs.VTarget,
		})
	}

	defaults := simulation.MissilePerformance{
		InitialSpeed:             s.MissileDefaults.Kinematics.InitialSpeed,
		VMax:                     s.MissileDefaults.Kinematics.VMax,
		AMax:                     s.MissileDefaults.Kinematics.AMax,
		OmegaMax:                 s.MissileDefaults.Kinematics.OmegaMaxRad(),
		InterceptRadius:          s.MissileDefaults.Kinematics.InterceptRadius,
		PNGain:                   s.Policy.MissileGuidance.N,
		EndgameFactor:            s.Policy.MissileGuidance.EndgameFactor,
		EndgameMissIncreaseTicks: s.Policy.MissileGuidance.EndgameMissIncreaseTicks,
	}

	tMaxTicks := uint64(s.Sim.TMaxS / dt)

	return simulation.NewEngine(dt, tMaxTicks, world, cp, s.Policy.MaxAssignablePerTarget, defaults, sensors, launchers, groups, sink)
}

// Run builds the engine from the configured scenario and steps it to
// termination, writing an AAR on completion.
func (r *EngagementRunner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.scenario == nil {
		r.mu.Unlock()
		return fmt.Errorf("engagement runner not configured")
	}
	scenario := r.scenario
	r.log = reporting.NewEventLog(uuid.NewString())
	r.engine = buildEngine(scenario, r.log)
	engine := r.engine
	log := r.log
	aarDir := r.aarDir
	r.mu.Unlock()

	logger.LogKeyValue("ticks planned", engine.TMaxTicks)
	logger.LogKeyValue("enemy groups in scenario", len(scenario.EnemyForces.Groups))

	if err := engine.Run(ctx); err != nil {
		return err
	}

	var aarPath string
	writeErr := logger.WithSpinner("writing after action report", func() error {
		gen := reporting.NewAARGenerator(reporting.AARConfig{OutputDir: aarDir})
		aar := gen.Generate(log, engine)
		path, err := gen.WriteJSON(aar)
		if err != nil {
			return err
		}
		aarPath = path
		return nil
	})
	if writeErr == nil {
		logger.LogKeyValue("aar_path", aarPath)
	}

	for typ, count := range log.Summary() {
		logger.LogKeyValue(typ, count)
	}

	return nil
}

// Stop marks the run stopped; the engine itself has no cooperative
// cancellation beyond ctx, so Stop is advisory bookkeeping only.
func (r *EngagementRunner) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	return nil
}

func init() {
	if err := pkgsim.DefaultRegistry.Register("Layered Air Defense Engagement", NewEngagementRunner); err != nil {
		logger.Errorf("failed to register engagement runner: %v", err)
	}
}
