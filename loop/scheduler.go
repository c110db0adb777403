// Package loop drives a playfield: it owns the frame schedule, turns elapsed time into
// gravity ticks, applies the level-up policy and funnels input into the single goroutine
// allowed to touch the playfield.
package loop

import (
	"context"
	"reflect"
	"slices"
	"time"

	"github.com/plus3/blockfall/playfield"
)

// SchedulerStats is a snapshot of scheduler counters.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats holds the timing of one registered system. MinDuration is zero until the
// system has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// AvgDuration is the mean time per execution.
func (st SystemStats) AvgDuration() time.Duration {
	if st.ExecutionCount == 0 {
		return 0
	}
	return st.TotalDuration / time.Duration(st.ExecutionCount)
}

func (st *SystemStats) record(d time.Duration) {
	if st.ExecutionCount == 0 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.LastDuration = d
	st.TotalDuration += d
	st.ExecutionCount++
}

// Scheduler runs systems in registration order against one playfield. It is not safe for
// concurrent use; Once and Run must stay on one goroutine.
type Scheduler struct {
	field       *playfield.Playfield
	systems     []System
	timings     []SystemStats
	frames      int64
	locks       []playfield.LockEvent
}

// NewScheduler creates a new scheduler for the given playfield.
func NewScheduler(field *playfield.Playfield) *Scheduler {
	return &Scheduler{
		field:   field,
		systems: make([]System, 0),
	}
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timings = append(s.timings, SystemStats{Name: systemType.Name()})
}

// Field is the playfield currently being driven.
func (s *Scheduler) Field() *playfield.Playfield {
	return s.field
}

// SetField swaps in a new playfield, typically to restart a game. Call it from a deferred
// command or between frames.
func (s *Scheduler) SetField(field *playfield.Playfield) {
	s.field = field
	s.locks = nil
}

// Once executes all registered systems once with the given delta time in seconds, then
// applies the commands they queued.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.field, s.locks)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	s.frames++
	s.locks = frame.Commands.Flush(frame.Field)
	if s.field != frame.Field {
		// A deferred SetField replaced the game; its locks belong to the old one.
		s.locks = nil
	}
}

// Run calls Once on every tick of interval, passing the measured time since the previous
// tick, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(prev).Seconds())
			prev = now
		}
	}
}

// GetStats returns a copy of the counters; the caller may keep it across frames.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     slices.Clone(s.timings),
	}
	for _, st := range s.timings {
		stats.TotalExecutions += st.ExecutionCount
	}
	return stats
}
