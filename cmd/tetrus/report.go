package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/plus3/tetrus/config"
	"github.com/plus3/tetrus/tetris"
)

type Report struct {
	// Configuration
	Settings config.Settings
	MaxTicks int

	// Results
	Ticks         int64
	Games         int
	Score         tetris.Score
	TotalTime     time.Duration
	SimulatedTime time.Duration
	StepTime      Stats
	Phases        []tetris.PhaseStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
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
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Clears lists how many locks cleared one to four rows.
func (r *Report) Clears() []int {
	out := make([]int, 4)
	for n := range out {
		out[n] = r.Score.Clears(n + 1)
	}
	return out
}

// PhaseTable renders the per-phase timings as a plain text table.
func (r *Report) PhaseTable() string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)

	table.SetHeader([]string{"Phase", "Runs", "Avg", "Min", "Max", "Total"})
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("   ")

	for _, ph := range r.Phases {
		table.Append([]string{
			ph.Name,
			humanize.Comma(ph.ExecutionCount),
			ph.AvgDuration.String(),
			ph.MinDuration.String(),
			ph.MaxDuration.String(),
			ph.TotalDuration.String(),
		})
	}

	table.Render()
	return b.String()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# tetrus Benchmark Report

## Configuration
- **Gravity Interval:** {{.Settings.Gravity}}
- **Rotate Debounce:** {{.Settings.RotateDebounce}}
- **Randomizer:** {{.Settings.Randomizer}} (seed {{.Settings.Seed}})
- **Frame Interval:** {{.Settings.FrameInterval}} ({{.Settings.TPS}} ticks/s)
{{- if .MaxTicks}}
- **Tick Limit:** {{comma .MaxTicks}}
{{- end}}

## Game Results
- **Ticks:** {{comma .Ticks}} ({{.SimulatedTime}} simulated)
- **Games Topped Out:** {{.Games}}
- **Locks:** {{comma .Score.Locks}}
- **Lines:** {{comma .Score.Lines}}
- **Points:** {{comma .Score.Points}}
- **Clears (1/2/3/4 rows):** {{range $i, $n := .Clears}}{{if $i}} / {{end}}{{$n}}{{end}}

## Performance Results
- **Total Run Time:** {{.TotalTime}}
- **Step Time:**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Phase Timings
{{.PhaseTable}}
## Memory Usage
- Heap Alloc:  {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{bytes .MemStatsStart.TotalAlloc}} (start) -> {{bytes .MemStatsEnd.TotalAlloc}} (end)
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bytes": humanize.Bytes,
		"comma": func(v any) string {
			switch val := v.(type) {
			case int:
				return humanize.Comma(int64(val))
			case int64:
				return humanize.Comma(val)
			default:
				return fmt.Sprint(v)
			}
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
