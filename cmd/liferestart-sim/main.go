package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	liferestart "github.com/lox/liferestart"
	"github.com/lox/liferestart/batchstats"
	"github.com/lox/liferestart/catalog"
)

// CLI drives a batch of Simulate runs against a catalogue file and reports
// aggregate score statistics, a quick way to sanity-check a catalogue's
// balance without wiring up a full front end.
type CLI struct {
	Catalog  string `arg:"" help:"Path to the HCL catalogue file." type:"existingfile"`
	Runs     int    `short:"n" help:"Number of simulated lives to run." default:"1000"`
	Talents  string `short:"t" help:"Comma-separated starting talent ids." default:""`
	CHR      int    `help:"Starting CHR." default:"5"`
	INT      int    `help:"Starting INT." default:"5"`
	STR      int    `help:"Starting STR." default:"5"`
	MNY      int    `help:"Starting MNY." default:"5"`
	LogLevel string `help:"Set the log level." enum:"debug,info,warn,error" default:"info"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("liferestart-sim"),
		kong.Description("Batch-runs a life-restart catalogue and reports score statistics."),
		kong.UsageOnError(),
	)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", "error", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	cat, err := catalog.Load(cli.Catalog)
	if err != nil {
		logger.Fatal("failed to load catalogue", "error", err)
	}

	talentIDs, err := parseTalentIDs(cli.Talents)
	if err != nil {
		logger.Fatal("invalid --talents", "error", err)
	}

	engineLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerologLevel(level)).With().Timestamp().Logger()
	engine := liferestart.New(cat, liferestart.WithLogger(engineLogger))

	properties := map[string]int{"CHR": cli.CHR, "INT": cli.INT, "STR": cli.STR, "MNY": cli.MNY}

	stats := &batchstats.Statistics{}
	for i := 0; i < cli.Runs; i++ {
		result, err := engine.Simulate(talentIDs, properties, nil)
		if err != nil {
			logger.Fatal("simulation failed", "run", i, "error", err)
		}
		stats.Add(batchstats.RunResult{
			Score:             result.Summary.TotalScore,
			Years:             len(result.Trajectory),
			AchievementsCount: len(result.NewAchievements),
			Replacements:      len(result.Replacements),
		})
	}

	logger.Info("batch complete", "runs", stats.Runs, "mean_years", stats.MeanYears())
	fmt.Printf("runs:              %d\n", stats.Runs)
	fmt.Printf("mean score:        %.2f\n", stats.Mean())
	fmt.Printf("stddev:            %.2f\n", stats.StdDev())
	fmt.Printf("median score:      %.2f\n", stats.Median())
	fmt.Printf("p10 / p90 score:   %.2f / %.2f\n", stats.Percentile(0.1), stats.Percentile(0.9))
	fmt.Printf("min / max score:   %.2f / %.2f\n", stats.MinScore, stats.MaxScore)
	fmt.Printf("mean years lived:  %.2f\n", stats.MeanYears())
	fmt.Printf("achievement rate:  %.1f%%\n", stats.AchievementRate()*100)

	ctx.Exit(0)
}

func parseTalentIDs(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing talent id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func zerologLevel(l log.Level) zerolog.Level {
	switch l {
	case log.DebugLevel:
		return zerolog.DebugLevel
	case log.WarnLevel:
		return zerolog.WarnLevel
	case log.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
