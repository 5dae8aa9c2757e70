package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/models"
)

var (
	logSitups   int32
	logPushups  float32
	logDistance float32
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a workout and show the resulting level",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("situps") && !cmd.Flags().Changed("pushups") && !cmd.Flags().Changed("distance") {
			return fmt.Errorf("nothing to log: pass --situps, --pushups or --distance")
		}

		src, closeSrc, err := openSource(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSrc()

		data := models.WorkoutData{Situps: logSitups, Pushups: logPushups, RunDistance: logDistance}
		if err := src.Record(cmd.Context(), data, logNotes); err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		_, p, err := evaluate(cmd.Context(), src)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "✅ Workout logged")
		printProgress(out, p)
		return nil
	},
}

func init() {
	logCmd.Flags().Int32VarP(&logSitups, "situps", "s", 0, "Sit-ups performed")
	logCmd.Flags().Float32VarP(&logPushups, "pushups", "p", 0, "Push-ups performed (partial reps allowed)")
	logCmd.Flags().Float32VarP(&logDistance, "distance", "d", 0, "Distance run, in miles")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "Notes for this workout (database source only)")
	rootCmd.AddCommand(logCmd)
}
