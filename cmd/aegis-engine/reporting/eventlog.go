// Package reporting turns raw engine lifecycle events into a colored
// console log and, at the end of a run, an After Action Report.
package reporting

import (
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
	"github.com/aegis-sim/aegis/pkg/logger"
)

// Event type constants.
const (
	EventGroupSpawn   = "group_spawn"
	EventDetect       = "detect"
	EventLaunch       = "launch"
	EventHit          = "hit"
	EventSelfDestruct = "self_destruct"
	EventBreakthrough = "breakthrough"
	EventDisappear    = "disappear"
	EventTargetKilled = "target_killed"
)

// LogEntry is one recorded engine event.
type LogEntry struct {
	Timestamp time.Time
	Tick      uint64
	Type      string
	Message   string
	Details   map[string]interface{}
}

var (
	colorSpawn     = color.New(color.FgCyan)
	colorLaunch    = color.New(color.FgBlue, color.Bold)
	colorHit       = color.New(color.FgGreen, color.Bold)
	colorDestruct  = color.New(color.FgYellow)
	colorBreach    = color.New(color.FgRed, color.Bold)
	colorDisappear = color.New(color.FgHiBlack)
	colorKilled    = color.New(color.FgGreen)
)

// EventLog accumulates a run's events and satisfies
// simulation.EventSink, so it can be handed straight to NewEngine.
type EventLog struct {
	mu      sync.Mutex
	runID   string
	start   time.Time
	entries []LogEntry
}

// NewEventLog creates an EventLog and announces the run has started.
func NewEventLog(runID string) *EventLog {
	el := &EventLog{runID: runID, start: time.Now()}
	logger.LogSection(fmt.Sprintf("Engagement run %s started", runID))
	return el
}

func (el *EventLog) record(tick uint64, typ, message string, details map[string]interface{}) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.entries = append(el.entries, LogEntry{
		Timestamp: time.Now(), Tick: tick, Type: typ, Message: message, Details: details,
	})
}

// Entries returns a copy of the recorded log.
func (el *EventLog) Entries() []LogEntry {
	el.mu.Lock()
	defer el.mu.Unlock()
	out := make([]LogEntry, len(el.entries))
	copy(out, el.entries)
	return out
}

func (el *EventLog) GroupSpawned(tick uint64, groupID string, targetIDs []simulation.EntityID) {
	msg := fmt.Sprintf("group %s spawned %d target(s)", groupID, len(targetIDs))
	el.record(tick, EventGroupSpawn, msg, map[string]interface{}{"group_id": groupID, "count": len(targetIDs)})
	colorSpawn.Printf("[tick %d] %s\n", tick, msg)
}

func (el *EventLog) TargetBreakthrough(tick uint64, id simulation.EntityID) {
	msg := fmt.Sprintf("target %d broke through", id)
	el.record(tick, EventBreakthrough, msg, map[string]interface{}{"target_id": id})
	colorBreach.Printf("[tick %d] BREAKTHROUGH: %s\n", tick, msg)
}

func (el *EventLog) TargetDisappeared(tick uint64, id simulation.EntityID) {
	msg := fmt.Sprintf("target %d left the engagement region", id)
	el.record(tick, EventDisappear, msg, map[string]interface{}{"target_id": id})
	colorDisappear.Printf("[tick %d] %s\n", tick, msg)
}

func (el *EventLog) TargetKilled(tick uint64, id simulation.EntityID, hits int) {
	msg := fmt.Sprintf("target %d killed (%d hit(s) this tick)", id, hits)
	el.record(tick, EventTargetKilled, msg, map[string]interface{}{"target_id": id, "hits": hits})
	colorKilled.Printf("[tick %d] %s\n", tick, msg)
}

func (el *EventLog) MissileLaunched(tick uint64, m *simulation.Missile) {
	msg := fmt.Sprintf("missile %d launched from launcher %d at target %d", m.ID, m.LauncherID, m.TargetID)
	el.record(tick, EventLaunch, msg, map[string]interface{}{
		"missile_id": m.ID, "launcher_id": m.LauncherID, "target_id": m.TargetID,
	})
	colorLaunch.Printf("[tick %d] %s\n", tick, msg)
}

func (el *EventLog) MissileHit(tick uint64, missileID, targetID simulation.EntityID) {
	msg := fmt.Sprintf("missile %d hit target %d", missileID, targetID)
	el.record(tick, EventHit, msg, map[string]interface{}{"missile_id": missileID, "target_id": targetID})
	colorHit.Printf("[tick %d] %s\n", tick, msg)
}

func (el *EventLog) MissileSelfDestruct(tick uint64, missileID simulation.EntityID) {
	msg := fmt.Sprintf("missile %d self-destructed", missileID)
	el.record(tick, EventSelfDestruct, msg, map[string]interface{}{"missile_id": missileID})
	colorDestruct.Printf("[tick %d] %s\n", tick, msg)
}

// Summary tallies entries by type for a quick end-of-run readout.
func (el *EventLog) Summary() map[string]int {
	el.mu.Lock()
	defer el.mu.Unlock()
	counts := make(map[string]int)
	for _, e := range el.entries {
		counts[e.Type]++
	}
	return counts
}

// StartTime returns when the log was created.
func (el *EventLog) StartTime() time.Time { return el.start }

// RunID returns the run identifier this log was created with.
func (el *EventLog) RunID() string { return el.runID }
