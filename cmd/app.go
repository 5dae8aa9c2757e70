package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/misterclayt0n/dandelion/internal/config"
	"github.com/misterclayt0n/dandelion/internal/models"
	"github.com/misterclayt0n/dandelion/internal/progression"
	"github.com/misterclayt0n/dandelion/internal/storage"
	"github.com/misterclayt0n/dandelion/internal/utils"
)

// openSource returns the configured workout source and a function releasing it.
func openSource(ctx context.Context) (storage.Source, func() error, error) {
	if cfg.Data.Source == config.SourceJSON {
		logrus.WithField("path", cfg.Data.JSONPath).Debug("using json workout records")
		return storage.JSONFile{Path: cfg.Data.JSONPath}, func() error { return nil }, nil
	}

	st, err := openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return st, st.Close, nil
}

func openStorage(ctx context.Context) (*storage.Storage, error) {
	st, err := storage.NewStorage(ctx, cfg.DB.ConnectionString, cfg.DB.AuthToken)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// evaluate loads the snapshot and runs it through the progression core. A
// missing rank is not fatal: the progress comes back with the fallback label.
func evaluate(ctx context.Context, src storage.Source) (models.WorkoutData, progression.Progress, error) {
	data, err := src.Snapshot(ctx)
	if err != nil {
		return data, progression.Progress{}, fmt.Errorf("failed to load workout data: %w", err)
	}

	p, err := progression.Evaluate(data, progression.DefaultRankTable())
	if errors.Is(err, progression.ErrRankLookup) {
		logrus.WithError(err).Warn("falling back to unknown rank")
		return data, p, nil
	}
	if err != nil {
		return data, p, err
	}

	logrus.WithFields(logrus.Fields{
		"experience": p.Experience,
		"level":      p.Level,
		"remaining":  p.RemainingExp,
		"rank":       p.Rank,
	}).Debug("evaluated workout snapshot")
	return data, p, nil
}

func displayLocation() *time.Location {
	loc, err := utils.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		logrus.WithError(err).Warn("using local time")
		return time.Local
	}
	return loc
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

func printWorkout(w io.Writer, data models.WorkoutData) {
	printMetric(w, "Sit-ups", data.Situps)
	printMetric(w, "Push-ups", progression.FormatReal(data.Pushups))
	printMetric(w, "Run distance", progression.FormatReal(data.RunDistance)+" mi")
}

// printProgress prints the three display lines, the rank highlighted.
func printProgress(w io.Writer, p progression.Progress) {
	lines := p.Lines()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()

	fmt.Fprintln(w, "  "+green(lines[0]))
	fmt.Fprintln(w, "  "+lines[1])
	fmt.Fprintln(w, "  "+magenta(lines[2]))
}
