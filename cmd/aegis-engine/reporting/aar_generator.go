package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
)

// AAR is the After Action Report produced at the end of a run.
type AAR struct {
	Metadata    AARMetadata      `json:"metadata"`
	Summary     ExecutiveSummary `json:"summary"`
	Timeline    []TimelineEntry  `json:"timeline"`
	Targets     []TargetOutcome  `json:"targets"`
	Launchers   []LauncherUsage  `json:"launchers"`
	EventCounts map[string]int   `json:"event_counts"`
}

// AARMetadata identifies the run.
type AARMetadata struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	StartedAt   time.Time `json:"started_at"`
	Duration    string    `json:"duration"`
	Ticks       uint64    `json:"ticks"`
}

// ExecutiveSummary is the headline outcome of the engagement.
type ExecutiveSummary struct {
	TargetsSpawned      int `json:"targets_spawned"`
	TargetsKilled       int `json:"targets_killed"`
	TargetsBrokeThrough int `json:"targets_broke_through"`
	TargetsDisappeared  int `json:"targets_disappeared"`
	MissilesLaunched     int `json:"missiles_launched"`
	MissilesHit          int `json:"missiles_hit"`
	MissilesSelfDestruct int `json:"missiles_self_destruct"`
}

// TimelineEntry is one event in chronological order.
type TimelineEntry struct {
	Tick    uint64 `json:"tick"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// TargetOutcome is the final disposition of one target.
type TargetOutcome struct {
	ID    simulation.EntityID `json:"id"`
	State string              `json:"state"`
}

// LauncherUsage summarizes one launcher's activity.
type LauncherUsage struct {
	ID                simulation.EntityID `json:"id"`
	MissilesFired     int                 `json:"missiles_fired"`
	MagazineRemaining int                 `json:"magazine_remaining"`
}

// AARConfig configures where/how the report is written.
type AARConfig struct {
	OutputDir string
}

// AARGenerator builds an AAR from an EventLog and final engine state.
type AARGenerator struct {
	config AARConfig
}

// NewAARGenerator creates a generator writing into cfg.OutputDir.
func NewAARGenerator(cfg AARConfig) *AARGenerator {
	return &AARGenerator{config: cfg}
}

// Generate builds the report from the event log and the engine's final
// entity state.
func (g *AARGenerator) Generate(log *EventLog, e *simulation.Engine) *AAR {
	entries := log.Entries()

	summary := ExecutiveSummary{}
	timeline := make([]TimelineEntry, 0, len(entries))
	for _, ev := range entries {
		timeline = append(timeline, TimelineEntry{Tick: ev.Tick, Type: ev.Type, Message: ev.Message})
		switch ev.Type {
		case EventGroupSpawn:
			if count, ok := ev.Details["count"].(int); ok {
				summary.TargetsSpawned += count
			}
		case EventTargetKilled:
			summary.TargetsKilled++
		case EventBreakthrough:
			summary.TargetsBrokeThrough++
		case EventDisappear:
			summary.TargetsDisappeared++
		case EventLaunch:
			summary.MissilesLaunched++
		case EventHit:
			summary.MissilesHit++
		case EventSelfDestruct:
			summary.MissilesSelfDestruct++
		}
	}

	targets := make([]TargetOutcome, 0, len(e.Targets))
	for _, id := range sortedTargetIDsForReport(e) {
		targets = append(targets, TargetOutcome{ID: id, State: e.Targets[id].State.String()})
	}

	launcherFired := make(map[simulation.EntityID]int)
	for _, ev := range entries {
		if ev.Type != EventLaunch {
			continue
		}
		if lid, ok := ev.Details["launcher_id"].(simulation.EntityID); ok {
			launcherFired[lid]++
		}
	}
	launchers := make([]LauncherUsage, 0, len(e.Launchers))
	for _, l := range e.Launchers {
		launchers = append(launchers, LauncherUsage{ID: l.ID, MissilesFired: launcherFired[l.ID], MagazineRemaining: l.Magazine})
	}

	now := time.Now()
	return &AAR{
		Metadata: AARMetadata{
			RunID: log.RunID(), GeneratedAt: now, StartedAt: log.StartTime(),
			Duration: now.Sub(log.StartTime()).String(), Ticks: e.Tick,
		},
		Summary:     summary,
		Timeline:    timeline,
		Targets:     targets,
		Launchers:   launchers,
		EventCounts: log.Summary(),
	}
}

func sortedTargetIDsForReport(e *simulation.Engine) []simulation.EntityID {
	ids := make([]simulation.EntityID, 0, len(e.Targets))
	for id := range e.Targets {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}

// WriteJSON marshals the AAR as indented JSON under config.OutputDir.
func (g *AARGenerator) WriteJSON(aar *AAR) (string, error) {
	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating AAR output dir: %w", err)
	}
	path := filepath.Join(g.config.OutputDir, fmt.Sprintf("aar-%s.json", aar.Metadata.RunID))

	data, err := json.MarshalIndent(aar, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling AAR: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing AAR: %w", err)
	}
	return path, nil
}
