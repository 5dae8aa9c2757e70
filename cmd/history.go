package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/models"
	"github.com/misterclayt0n/dandelion/internal/progression"
	"github.com/misterclayt0n/dandelion/internal/utils"
)

var (
	historyLimit int
	filterDay    string
)

// historyCmd lists logged workouts with the experience each one is worth on its own.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display logged workouts, optionally filtered by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		loc := displayLocation()

		limit := historyLimit
		if filterDay != "" {
			limit = 0
		}
		entries, err := st.GetAllWorkouts(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		if filterDay != "" {
			day, err := utils.ParseDay(filterDay, loc)
			if err != nil {
				return err
			}
			var filtered []models.WorkoutEntry
			for _, e := range entries {
				if utils.SameDay(e.RecordedAt, day, loc) {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
			if historyLimit > 0 && len(entries) > historyLimit {
				entries = entries[:historyLimit]
			}
		}

		out := cmd.OutOrStdout()
		magenta := color.New(color.FgMagenta).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		if len(entries) == 0 {
			fmt.Fprintln(out, magenta("No workouts found."))
			return nil
		}

		fmt.Fprintf(out, "%-16s | %-6s | %-8s | %-8s | %-10s | %s\n", "Date", "Situps", "Pushups", "Miles", "Exp", "ID")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, e := range entries {
			exp := progression.ComputeExperience(e.Data)
			fmt.Fprintf(out, "%-16s | %-6d | %-8s | %-8s | %-10s | %s\n",
				utils.FormatIn(e.RecordedAt, loc),
				e.Data.Situps,
				progression.FormatReal(e.Data.Pushups),
				progression.FormatReal(e.Data.RunDistance),
				progression.FormatReal(exp),
				e.ID,
			)
			if e.Notes != "" {
				fmt.Fprintf(out, "  %s %s\n", boldCyan("Notes:"), e.Notes)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of workouts to display (0 for all)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
}
