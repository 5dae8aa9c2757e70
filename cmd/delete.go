package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [workout-id]",
	Short: "Delete a logged workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteWorkout(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Workout '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
