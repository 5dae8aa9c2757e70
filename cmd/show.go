package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/progression"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current level, experience left and rank",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := openSource(cmd.Context())
		if err != nil {
			return err
		}
		defer closeSrc()

		data, p, err := evaluate(cmd.Context(), src)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showRaw {
			fmt.Fprintln(out, p.Raw())
			return nil
		}

		printBoxedHeader(out, "DANDELION SYSTEM")
		printProgress(out, p)
		fmt.Fprintln(out)
		printMetric(out, "Experience", progression.FormatReal(p.Experience))
		printWorkout(out, data)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showRaw, "raw", "r", false, "Print \"level remaining rank\" only")
	rootCmd.AddCommand(showCmd)
}
