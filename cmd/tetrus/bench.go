package main

import (
	"context"
	"log"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/tetrus/config"
	"github.com/plus3/tetrus/tetris"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the engine headless with random input and print a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		ticks, err := cmd.Flags().GetInt("ticks")
		if err != nil {
			return err
		}
		duration, err := cmd.Flags().GetDuration("duration")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), duration)
		defer cancel()

		log.Printf("running benchmark for %s (tick limit %d)...", duration, ticks)
		report, err := runBench(ctx, s, ticks)
		if err != nil {
			return err
		}
		log.Println("benchmark finished")

		return report.Generate(cmd.OutOrStdout())
	},
}

func init() {
	benchCmd.Flags().Int("ticks", 0, "stop after this many ticks (0 runs until --duration)")
	benchCmd.Flags().Duration("duration", 10*time.Second, "maximum run time")
}

// inputBot produces random intents: mostly idle, sometimes a single
// direction.
type inputBot struct {
	rng *rand.Rand
}

func newInputBot(seed uint64) *inputBot {
	return &inputBot{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (b *inputBot) intent() tetris.Intent {
	switch b.rng.IntN(10) {
	case 0:
		return tetris.Intent{Left: true}
	case 1:
		return tetris.Intent{Right: true}
	case 2:
		return tetris.Intent{Up: true}
	case 3, 4:
		return tetris.Intent{Down: true}
	default:
		return tetris.Intent{}
	}
}

// runBench steps a session as fast as possible with simulated frame time
// until maxTicks ticks have run (0 means no limit) or ctx is done. A topped
// out game is reset and counted.
func runBench(ctx context.Context, s config.Settings, maxTicks int) (*Report, error) {
	cfg, err := s.SessionConfig()
	if err != nil {
		return nil, err
	}
	session, err := tetris.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Settings: s,
		MaxTicks: maxTicks,
	}
	session.OnLock(func(ev tetris.LockEvent) {
		report.Score.Record(ev.Cleared())
	})

	bot := newInputBot(s.Seed)
	frame := s.FrameInterval()

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for maxTicks == 0 || report.Ticks < int64(maxTicks) {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		stepStart := time.Now()
		session.Step(bot.intent(), frame)
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))
		report.Ticks++

		if session.ToppedOut() {
			report.Games++
			session.Reset()
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.Ticks) * frame
	report.StepTime.Finalize()
	report.Phases = session.Stats().Phases
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report, nil
}
