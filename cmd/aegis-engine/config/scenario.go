// Package config defines the scenario schema loaded from YAML and the
// validation that must pass before the engine is allowed to start.
package config

import (
	"fmt"
	"math"
)

// Scenario is the full engagement scenario: simulation timing, world
// bounds, command post geometry, allocation policy, friendly forces,
// enemy groups, and missile defaults.
type Scenario struct {
	Sim             SimSettings     `yaml:"sim"`
	World           WorldSettings   `yaml:"world"`
	CommandPost     CommandPostSpec `yaml:"command_post"`
	Policy          PolicySettings  `yaml:"policy"`
	FriendlyForces  FriendlyForces  `yaml:"friendly_forces"`
	EnemyForces     EnemyForces     `yaml:"enemy_forces"`
	MissileDefaults MissileDefaults `yaml:"missile_defaults"`
}

// SimSettings controls tick period, termination, and the reserved RNG
// seed (the core is fully deterministic; the seed is carried for future
// stochastic extensions and is not consumed today).
type SimSettings struct {
	DtS   float64 `yaml:"dt_s"`
	TMaxS float64 `yaml:"t_max_s"`
	Seed  int64   `yaml:"seed"`
}

// WorldSettings bounds the domain cube.
type WorldSettings struct {
	RegionRect RegionRect `yaml:"region_rect"`
	ZLimitsM   [2]float64 `yaml:"z_limits_m"`
}

// RegionRect is an axis-aligned XY rectangle.
type RegionRect struct {
	XMin float64 `yaml:"x_min,omitempty"`
	XMax float64 `yaml:"x_max,omitempty"`
	YMin float64 `yaml:"y_min,omitempty"`
	YMax float64 `yaml:"y_max,omitempty"`
}

// CommandPostSpec places the command post and defines its breakthrough
// geometry.
type CommandPostSpec struct {
	Position struct {
		XY [2]float64 `yaml:"xy"`
	} `yaml:"position"`
	ArrivalRadiusM float64 `yaml:"arrival_radius_m"`
}

// PolicySettings configures the allocator and the guidance defaults shared
// by every missile; launchers carry no guidance settings of their own.
type PolicySettings struct {
	TgoDefinition           string                `yaml:"tgo_definition"`
	TieBreakers             []string              `yaml:"tie_breakers"`
	LauncherSelectionOrder  []string              `yaml:"launcher_selection_order"`
	LauncherInitiallyCooled bool                  `yaml:"launcher_initially_cooled"`
	MissileGuidance         MissileGuidancePolicy `yaml:"missile_guidance"`
	MaxAssignablePerTarget  int                   `yaml:"max_assignable_per_target"`
}

// MissileGuidancePolicy is the guidance-law configuration.
type MissileGuidancePolicy struct {
	Type                     string  `yaml:"type"`
	N                        float64 `yaml:"n"`
	EndgameFactor            float64 `yaml:"endgame_factor"`
	EndgameMissIncreaseTicks int     `yaml:"endgame_miss_increase_ticks"`
}

// FriendlyForces lists sensors and launchers.
type FriendlyForces struct {
	Sensors   []SensorSpec   `yaml:"sensors"`
	Launchers []LauncherSpec `yaml:"launchers"`
}

// SensorSpec is one sensor's placement and range.
type SensorSpec struct {
	ID     string     `yaml:"id"`
	Pos    [3]float64 `yaml:"pos"`
	RangeM float64    `yaml:"range_m"`
}

// LauncherSpec is one launcher's placement, magazine, and cooldown.
type LauncherSpec struct {
	ID             string     `yaml:"id"`
	Pos            [3]float64 `yaml:"pos"`
	MissilesLoaded int        `yaml:"missiles_loaded"`
	CooldownS      float64    `yaml:"cooldown_s"`
}

// EnemyForces lists the spawn groups.
type EnemyForces struct {
	Groups []GroupSpec `yaml:"groups"`
}

// GroupSpec is one formation's spawn definition.
type GroupSpec struct {
	ID             string     `yaml:"id"`
	SpawnTimeS     float64    `yaml:"spawn_time_s"`
	CenterXY       [2]float64 `yaml:"center_xy"`
	ZM             float64    `yaml:"z_m"`
	Count          int        `yaml:"count"`
	RingSpacingM   float64    `yaml:"ring_spacing_m"`
	StartAngleDeg  float64    `yaml:"start_angle_deg"`
	RingHalfOffset bool       `yaml:"ring_half_offset"`
	EndurancePt    int        `yaml:"endurance_pt"`
	VTarget        float64    `yaml:"v_target"`
}

// MissileDefaults is the per-missile kinematic envelope.
type MissileDefaults struct {
	Kinematics KinematicsSpec `yaml:"kinematics"`
}

// KinematicsSpec are the missile speed/acceleration/turn-rate/intercept
// limits; OmegaMaxDegS is in degrees/second in the document and is
// converted to radians/second by OmegaMaxRad.
type KinematicsSpec struct {
	InitialSpeed    float64 `yaml:"initial_speed"`
	VMax            float64 `yaml:"v_max"`
	AMax            float64 `yaml:"a_max"`
	OmegaMaxDegS    float64 `yaml:"omega_max_deg_s"`
	InterceptRadius float64 `yaml:"intercept_radius"`
}

// OmegaMaxRad converts the configured turn rate to radians/second.
func (k KinematicsSpec) OmegaMaxRad() float64 {
	return k.OmegaMaxDegS * math.Pi / 180
}

func fieldError(field, reason string) error {
	return fmt.Errorf("config: %s %s", field, reason)
}

// Validate rejects missing/invalid fields and out-of-domain values before
// the engine is allowed to start.
func (s *Scenario) Validate() error {
	if s.Sim.DtS <= 0 {
		return fieldError("sim.dt_s", "must be positive")
	}
	if s.Sim.TMaxS <= 0 {
		return fieldError("sim.t_max_s", "must be positive")
	}

	if s.World.RegionRect.XMax <= s.World.RegionRect.XMin {
		return fieldError("world.region_rect", "x_max must exceed x_min")
	}
	if s.World.RegionRect.YMax <= s.World.RegionRect.YMin {
		return fieldError("world.region_rect", "y_max must exceed y_min")
	}
	if s.World.ZLimitsM[1] <= s.World.ZLimitsM[0] {
		return fieldError("world.z_limits_m", "upper bound must exceed lower bound")
	}

	if s.CommandPost.ArrivalRadiusM <= 0 {
		return fieldError("command_post.arrival_radius_m", "must be positive")
	}

	if s.Policy.MissileGuidance.N < 3 || s.Policy.MissileGuidance.N > 4 {
		return fieldError("policy.missile_guidance.n", "must be in [3,4]")
	}
	if s.Policy.MissileGuidance.EndgameFactor <= 1 {
		return fieldError("policy.missile_guidance.endgame_factor", "must exceed 1")
	}
	if s.Policy.MissileGuidance.EndgameMissIncreaseTicks <= 0 {
		return fieldError("policy.missile_guidance.endgame_miss_increase_ticks", "must be positive")
	}
	if s.Policy.MaxAssignablePerTarget <= 0 {
		return fieldError("policy.max_assignable_per_target", "must be positive")
	}

	if len(s.FriendlyForces.Sensors) == 0 {
		return fieldError("friendly_forces.sensors", "at least one sensor is required")
	}
	for _, sensor := range s.FriendlyForces.Sensors {
		if sensor.RangeM <= 0 {
			return fieldError(fmt.Sprintf("friendly_forces.sensors[%s].range_m", sensor.ID), "must be positive")
		}
	}

	if len(s.FriendlyForces.Launchers) == 0 {
		return fieldError("friendly_forces.launchers", "at least one launcher is required")
	}
	for _, l := range s.FriendlyForces.Launchers {
		if l.MissilesLoaded <= 0 {
			return fieldError(fmt.Sprintf("friendly_forces.launchers[%s].missiles_loaded", l.ID), "must be positive")
		}
		if l.CooldownS < 0 {
			return fieldError(fmt.Sprintf("friendly_forces.launchers[%s].cooldown_s", l.ID), "must be non-negative")
		}
	}

	if len(s.EnemyForces.Groups) == 0 {
		return fieldError("enemy_forces.groups", "at least one group is required")
	}
	for _, g := range s.EnemyForces.Groups {
		if g.Count < 1 {
			return fieldError(fmt.Sprintf("enemy_forces.groups[%s].count", g.ID), "must be at least 1")
		}
		if g.EndurancePt < 1 {
			return fieldError(fmt.Sprintf("enemy_forces.groups[%s].endurance_pt", g.ID), "must be at least 1")
		}
		if g.RingSpacingM <= 0 {
			return fieldError(fmt.Sprintf("enemy_forces.groups[%s].ring_spacing_m", g.ID), "must be positive")
		}
		if g.VTarget <= 0 {
			return fieldError(fmt.Sprintf("enemy_forces.groups[%s].v_target", g.ID), "must be positive")
		}
		if g.SpawnTimeS < 0 {
			return fieldError(fmt.Sprintf("enemy_forces.groups[%s].spawn_time_s", g.ID), "must be non-negative")
		}
	}

	k := s.MissileDefaults.Kinematics
	if k.InitialSpeed <= 0 {
		return fieldError("missile_defaults.kinematics.initial_speed", "must be positive")
	}
	if k.VMax < k.InitialSpeed {
		return fieldError("missile_defaults.kinematics.v_max", "must be at least initial_speed")
	}
	if k.AMax <= 0 {
		return fieldError("missile_defaults.kinematics.a_max", "must be positive")
	}
	if k.OmegaMaxDegS <= 0 {
		return fieldError("missile_defaults.kinematics.omega_max_deg_s", "must be positive")
	}
	if k.InterceptRadius <= 0 {
		return fieldError("missile_defaults.kinematics.intercept_radius", "must be positive")
	}

	return nil
}

// DefaultScenario returns a small, valid, self-contained scenario: one
// sensor, two launchers, one five-member group — useful as a smoke test
// and as the CLI's fallback when no file is given.
func DefaultScenario() *Scenario {
	return &Scenario{
		Sim: SimSettings{DtS: 0.1, TMaxS: 120, Seed: 1},
		World: WorldSettings{
			RegionRect: RegionRect{XMin: -1_000_000, XMax: 1_000_000, YMin: -1_000_000, YMax: 1_000_000},
			ZLimitsM:   [2]float64{0, 5000},
		},
		CommandPost: CommandPostSpec{ArrivalRadiusM: 200},
		Policy: PolicySettings{
			TgoDefinition:           "range_over_speed",
			TieBreakers:             []string{"xy_distance", "id"},
			LauncherSelectionOrder:  []string{"cooldown", "distance", "id"},
			LauncherInitiallyCooled: true,
			MissileGuidance: MissileGuidancePolicy{
				Type: "true_3d_pn", N: 3.5, EndgameFactor: 2.0, EndgameMissIncreaseTicks: 3,
			},
			MaxAssignablePerTarget: 2,
		},
		FriendlyForces: FriendlyForces{
			Sensors: []SensorSpec{{ID: "s1", Pos: [3]float64{0, 0, 0}, RangeM: 50000}},
			Launchers: []LauncherSpec{
				{ID: "l1", Pos: [3]float64{500, 0, 0}, MissilesLoaded: 4, CooldownS: 5},
				{ID: "l2", Pos: [3]float64{-500, 0, 0}, MissilesLoaded: 4, CooldownS: 5},
			},
		},
		EnemyForces: EnemyForces{
			Groups: []GroupSpec{{
				ID: "g1", SpawnTimeS: 0, CenterXY: [2]float64{20000, 0}, ZM: 1000,
				Count: 5, RingSpacingM: 300, StartAngleDeg: 0, RingHalfOffset: true,
				EndurancePt: 1, VTarget: 250,
			}},
		},
		MissileDefaults: MissileDefaults{Kinematics: KinematicsSpec{
			InitialSpeed: 50, VMax: 900, AMax: 300, OmegaMaxDegS: 40, InterceptRadius: 15,
		}},
	}
}
