package instrument

import "time"

// Snapshot is an immutable copy of a stopwatch.
type Snapshot struct {
	Sections []Measurement            // stopped sections, in stop order
	Events   map[string][]Measurement // stopped events per section, in stop order
	Peak     uint64                   // highest memory sample seen
}

func (s Snapshot) Section(name string) (Measurement, bool) {
	for _, m := range s.Sections {
		if m.Name == name {
			return m, true
		}
	}
	return Measurement{}, false
}

func (s Snapshot) EventsOf(section string) []Measurement {
	return append([]Measurement(nil), s.Events[section]...)
}

// Total sums the durations of a section's events.
func (s Snapshot) Total(section string) time.Duration {
	var total time.Duration
	for _, m := range s.Events[section] {
		total += m.Duration
	}
	return total
}
