package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/progression"
	"github.com/misterclayt0n/dandelion/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show totals, workout count, week streak and the current rank",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.GetAllWorkouts(ctx, 0)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		times := make([]time.Time, 0, len(entries))
		for _, e := range entries {
			times = append(times, e.RecordedAt.In(displayLocation()))
		}
		weekStreak := utils.WeekStreak(times, time.Now().In(displayLocation()))

		data, p, err := evaluate(ctx, st)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "STATUS")
		printMetric(out, "Workouts logged", len(entries))
		printMetric(out, "Week streak", fmt.Sprintf("%d weeks", weekStreak))
		if len(entries) > 0 {
			printMetric(out, "Last workout", utils.FormatIn(entries[0].RecordedAt, displayLocation()))
		}
		printWorkout(out, data)
		printMetric(out, "Experience", progression.FormatReal(p.Experience))
		printMetric(out, "Next level at", progression.FormatReal(progression.ExpForLevel(p.Level+1)))
		fmt.Fprintln(out)
		printProgress(out, p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
