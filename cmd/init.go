package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workout database",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Opening the storage creates the schema.
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
