package simulation

// Detect returns the set of target IDs within 3-D range of the sensor
// among the given alive targets. Sensors are stateless beyond their
// configuration: no noise, no latency, no occlusion, and no visibility of
// missiles or other friendly entities.
func (s *Sensor) Detect(targets map[EntityID]*Target) map[EntityID]struct{} {
	detected := make(map[EntityID]struct{})
	for id, tgt := range targets {
		if tgt.State != TargetAlive {
			continue
		}
		if tgt.Pos.Sub(s.Pos).Norm() <= s.RangeM {
			detected[id] = struct{}{}
		}
	}
	return detected
}

// UnionDetections merges the per-sensor detection sets into one, as §4.7
// phase 5 requires: duplicates collapse, order is irrelevant to the result.
func UnionDetections(sensors []*Sensor, targets map[EntityID]*Target) map[EntityID]struct{} {
	union := make(map[EntityID]struct{})
	for _, s := range sensors {
		for id := range s.Detect(targets) {
			union[id] = struct{}{}
		}
	}
	return union
}
