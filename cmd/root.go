package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/dandelion/internal/config"
	"github.com/misterclayt0n/dandelion/internal/logging"
)

var (
	cfgPath    string
	logLevel   string
	sourceFlag string

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:          "dandelion",
	Short:        "Turn workout counts into experience, a level and a rank",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		if sourceFlag != "" {
			c.Data.Source = sourceFlag
			if err := c.Validate(); err != nil {
				return err
			}
		}
		cfg = c

		logCloser = logging.Setup(logging.Params{
			Level:      cfg.Log.Level,
			FileName:   cfg.Log.File,
			FormatJSON: cfg.Log.JSON,
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (default ~/.config/dandelion/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Workout source: db or json (overrides config)")
}
