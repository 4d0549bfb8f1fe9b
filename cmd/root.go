package cmd

import (
	"os"

	"gotouch/internal/config"
	"gotouch/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "gotouch [flags] FILE...",
	Short: "Change file access and modification times",
	Long: `Update the access and modification times of each FILE to the current time.

A FILE that does not exist is created empty, unless -c is given.
-t takes a stamp of the form [[CC]YY]MMDDhhmm[.ss].`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logger.Init(debug || cfg.Debug)
		return nil
	},
	RunE: runTouch,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
}
