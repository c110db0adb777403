package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	GameLimit int
	Seed      uint64

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	FrameTime      Stats
	Games          loop.GameStats
	Kinds          []KindCount
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type KindCount struct {
	Kind  piece.Kind
	Locks int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) collect(games *loop.GameStats, sched *loop.SchedulerStats) {
	r.Games = *games
	r.TotalFrames = sched.Frames
	r.Systems = sched.Systems
	r.Kinds = r.Kinds[:0]
	for _, k := range piece.Kinds {
		r.Kinds = append(r.Kinds, KindCount{Kind: k, Locks: games.LocksOf(k)})
	}
}

// GCCycles is the number of collections that ran during the test.
func (r *Report) GCCycles() uint32 {
	return r.MemStatsEnd.NumGC - r.MemStatsStart.NumGC
}

// GCPause is the stop-the-world time accumulated during the test.
func (r *Report) GCPause() time.Duration {
	return time.Duration(r.MemStatsEnd.PauseTotalNs - r.MemStatsStart.PauseTotalNs)
}

func mib(b uint64) string {
	return fmt.Sprintf("%.2f", float64(b)/(1<<20))
}

// deltaMiB is signed: the heap may shrink between samples.
func deltaMiB(end, start uint64) string {
	return fmt.Sprintf("%+.2f", (float64(end)-float64(start))/(1<<20))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .GameLimit}}{{.GameLimit}}{{else}}none{{end}}
- **Seed:** {{.Seed}}

## Games
- **Started:** {{.Games.Games}}
- **Ended:** {{.Games.GamesOver}}
- **Pieces Locked:** {{.Games.Locks}}
{{- range .Kinds}}
  - {{.Kind}}: {{.Locks}}
{{- end}}
- **T-Spins:** {{.Games.TSpins}}
- **Clears:** single {{index .Games.Clears 1}}, double {{index .Games.Clears 2}}, triple {{index .Games.Clears 3}}, quad {{index .Games.Clears 4}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Systems
{{- range .Systems}}
- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Memory Usage (MiB)
- Heap Alloc:     {{mib .MemStatsStart.HeapAlloc}} (start) -> {{mib .MemStatsEnd.HeapAlloc}} (end) -> delta: {{delta .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{mib .MemStatsStart.TotalAlloc}} (start) -> {{mib .MemStatsEnd.TotalAlloc}} (end) -> delta: {{delta .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{.GCCycles}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.GCPause}}
{{end}}`

	fm := template.FuncMap{"mib": mib, "delta": deltaMiB}
	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
