// Package instrument records named, nestable timings with the memory
// high-water mark seen when each one stops.
package instrument

import (
	"runtime/metrics"
	"sync"
	"time"

	"gitlab.com/tozd/go/errors"
)

// ErrInstrumentationState is returned when a section or event is started
// twice or stopped without being started.
var ErrInstrumentationState = errors.Base("invalid instrumentation state")

// Measurement is a stopped section or event.
type Measurement struct {
	Name     string
	Start    time.Time
	Duration time.Duration
	Memory   uint64 // bytes, high-water mark observed at stop
}

type key struct {
	section string
	event   string // empty for the section itself
}

type pending struct {
	start time.Time
	mem   uint64
}

// Stopwatch tracks sections and the events grouped under them.
// It is safe for concurrent use.
type Stopwatch struct {
	now    func() time.Time
	sample func() uint64

	mu       sync.Mutex
	peak     uint64
	active   map[key]pending
	done     map[key]struct{}
	sections []Measurement
	events   map[string][]Measurement
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Stopwatch) { s.now = now }
}

// WithMemSampler replaces the heap sampler.
func WithMemSampler(sample func() uint64) Option {
	return func(s *Stopwatch) { s.sample = sample }
}

// New creates an empty stopwatch.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{
		now:    time.Now,
		sample: heapInUse,
		active: make(map[key]pending),
		done:   make(map[key]struct{}),
		events: make(map[string][]Measurement),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stopwatch) StartSection(name string) error {
	return s.start(key{section: name})
}

func (s *Stopwatch) StopSection(name string) error {
	m, err := s.stop(key{section: name})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sections = append(s.sections, m)
	s.mu.Unlock()
	return nil
}

func (s *Stopwatch) StartEvent(section, event string) error {
	if event == "" {
		return errors.Errorf("%w: empty event name in section %q", ErrInstrumentationState, section)
	}
	return s.start(key{section: section, event: event})
}

func (s *Stopwatch) StopEvent(section, event string) error {
	if event == "" {
		return errors.Errorf("%w: empty event name in section %q", ErrInstrumentationState, section)
	}
	m, err := s.stop(key{section: section, event: event})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.events[section] = append(s.events[section], m)
	s.mu.Unlock()
	return nil
}

func (s *Stopwatch) start(k key) error {
	if k.section == "" {
		return errors.Errorf("%w: empty section name", ErrInstrumentationState)
	}

	mem := s.sample()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[k]; ok {
		return errors.Errorf("%w: %s already started", ErrInstrumentationState, k)
	}
	if _, ok := s.done[k]; ok {
		return errors.Errorf("%w: %s already stopped", ErrInstrumentationState, k)
	}

	s.observe(mem)
	s.active[k] = pending{start: now, mem: mem}
	return nil
}

func (s *Stopwatch) stop(k key) (Measurement, error) {
	mem := s.sample()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.active[k]
	if !ok {
		return Measurement{}, errors.Errorf("%w: %s was never started", ErrInstrumentationState, k)
	}
	delete(s.active, k)
	s.done[k] = struct{}{}

	s.observe(mem)

	name := k.section
	if k.event != "" {
		name = k.event
	}

	return Measurement{
		Name:     name,
		Start:    p.start,
		Duration: now.Sub(p.start),
		Memory:   s.peak,
	}, nil
}

// observe must be called with mu held.
func (s *Stopwatch) observe(mem uint64) {
	if mem > s.peak {
		s.peak = mem
	}
}

// Section returns a stopped section.
func (s *Stopwatch) Section(name string) (Measurement, bool) {
	return s.Snapshot().Section(name)
}

// EventsOf returns the stopped events of a section in stop order.
func (s *Stopwatch) EventsOf(section string) []Measurement {
	return s.Snapshot().EventsOf(section)
}

// Snapshot copies every stopped measurement.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Sections: append([]Measurement(nil), s.sections...),
		Events:   make(map[string][]Measurement, len(s.events)),
		Peak:     s.peak,
	}
	for section, events := range s.events {
		snap.Events[section] = append([]Measurement(nil), events...)
	}
	return snap
}

func (k key) String() string {
	if k.event == "" {
		return "section " + k.section
	}
	return "event " + k.section + "/" + k.event
}

const heapMetric = "/memory/classes/heap/objects:bytes"

// heapInUse reads live heap bytes without stopping the world.
func heapInUse() uint64 {
	samples := []metrics.Sample{{Name: heapMetric}}
	metrics.Read(samples)
	if samples[0].Value.Kind() != metrics.KindUint64 {
		return 0
	}
	return samples[0].Value.Uint64()
}
