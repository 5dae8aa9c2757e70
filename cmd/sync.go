package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export every logged workout to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputFile string
		if len(args) == 1 {
			outputFile = args[0]
		} else {
			path, err := storage.GetDBExportPath()
			if err != nil {
				return err
			}
			outputFile = path
		}

		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ExportToTOML(cmd.Context(), outputFile)
		if err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d workouts to %s\n", n, outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Replace the workout log with the contents of a TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ImportFromTOML(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to build database: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Database built from TOML dump (%d workouts)\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
