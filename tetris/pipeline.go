package tetris

import (
	"reflect"
	"time"
)

// PipelineStats provides statistics about the tick pipeline.
type PipelineStats struct {
	PhaseCount int
	Ticks      int64
	Phases     []PhaseStats
}

// PhaseStats provides execution statistics for a single phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// phase is one ordered step of a tick.
type phase interface {
	execute(t *tick)
}

// tick carries the per-step inputs through the phases. The intent is a
// copy; the horizontal veto clears directions on it.
type tick struct {
	session *Session
	elapsed time.Duration
	intent  Intent
	events  []LockEvent
}

func (t *tick) emit(ev LockEvent) {
	t.events = append(t.events, ev)
}

// pipeline runs its phases in registration order.
type pipeline struct {
	phases     []phase
	phaseStats []*phaseStatsInternal
	ticks      int64
}

func newPipeline(phases ...phase) *pipeline {
	p := &pipeline{}
	for _, ph := range phases {
		p.register(ph)
	}
	return p
}

func (p *pipeline) register(ph phase) {
	p.phases = append(p.phases, ph)

	phaseType := reflect.TypeOf(ph)
	if phaseType.Kind() == reflect.Ptr {
		phaseType = phaseType.Elem()
	}

	p.phaseStats = append(p.phaseStats, &phaseStatsInternal{
		name:        phaseType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// once executes every phase for t.
func (p *pipeline) once(t *tick) {
	p.ticks++
	for i, ph := range p.phases {
		start := time.Now()
		ph.execute(t)
		duration := time.Since(start)

		stats := p.phaseStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

func (p *pipeline) stats() *PipelineStats {
	stats := &PipelineStats{
		PhaseCount: len(p.phases),
		Ticks:      p.ticks,
		Phases:     make([]PhaseStats, len(p.phaseStats)),
	}

	for i, internal := range p.phaseStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Phases[i] = PhaseStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
