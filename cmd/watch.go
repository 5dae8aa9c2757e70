package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/progression"
	"github.com/misterclayt0n/dandelion/internal/storage"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate the workout data periodically and print changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchInterval <= 0 {
			return fmt.Errorf("interval must be positive")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		src, closeSrc, err := openSource(ctx)
		if err != nil {
			return err
		}
		defer closeSrc()

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint).SprintFunc()
		return watchProgress(ctx, src, watchInterval, func(p progression.Progress) {
			fmt.Fprintln(out, faint(time.Now().Format("15:04:05")))
			printProgress(out, p)
		})
	},
}

// watchProgress evaluates src right away and then on every tick, calling
// render only when the result differs from the last one. Evaluation errors are
// logged and the loop carries on. It returns when ctx is done.
func watchProgress(ctx context.Context, src storage.Source, interval time.Duration, render func(progression.Progress)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		last    progression.Progress
		printed bool
	)
	for {
		_, p, err := evaluate(ctx, src)
		switch {
		case err != nil:
			logrus.WithError(err).Error("evaluation failed")
		case !printed || p != last:
			render(p)
			last, printed = p, true
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", time.Second, "Refresh interval")
	rootCmd.AddCommand(watchCmd)
}
