package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and parses a scenario YAML file, then validates it.
func LoadConfig(path string) (*Scenario, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("error parsing scenario file: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadConfigOrDefault loads a scenario from path, falling back to
// DefaultScenario when path is empty, then always applies environment
// overrides.
func LoadConfigOrDefault(path string) (*Scenario, error) {
	var scenario *Scenario

	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		scenario = loaded
	} else {
		scenario = DefaultScenario()
	}

	MergeWithEnvironment(scenario)

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario after environment overrides: %w", err)
	}

	return scenario, nil
}

// MergeWithEnvironment applies AEGIS_* environment overrides for the
// handful of parameters operators most commonly vary between runs
// without editing the scenario file.
func MergeWithEnvironment(s *Scenario) {
	if v := os.Getenv("AEGIS_DT_S"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			s.Sim.DtS = f
		}
	}
	if v := os.Getenv("AEGIS_T_MAX_S"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			s.Sim.TMaxS = f
		}
	}
	if v := os.Getenv("AEGIS_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Sim.Seed = n
		}
	}
	if v := os.Getenv("AEGIS_MISSILE_N"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Policy.MissileGuidance.N = f
		}
	}
	if v := os.Getenv("AEGIS_MAX_ASSIGNABLE_PER_TARGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.Policy.MaxAssignablePerTarget = n
		}
	}
}

// MergeWithCLIOverrides applies interactively-prompted or flag-supplied
// parameter overrides on top of a loaded scenario.
func MergeWithCLIOverrides(s *Scenario, overrides map[string]interface{}) {
	for key, value := range overrides {
		switch key {
		case "t_max_s":
			if f, ok := value.(float64); ok && f > 0 {
				s.Sim.TMaxS = f
			}
		case "dt_s":
			if f, ok := value.(float64); ok && f > 0 {
				s.Sim.DtS = f
			}
		case "missile_n":
			if f, ok := value.(float64); ok {
				s.Policy.MissileGuidance.N = f
			}
		case "max_assignable_per_target":
			if n, ok := value.(int); ok && n > 0 {
				s.Policy.MaxAssignablePerTarget = n
			}
		}
	}
}
