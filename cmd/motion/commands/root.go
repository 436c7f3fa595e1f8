// Package commands implements the motion CLI commands.
//
// The CLI hosts the sample driving loops for the engine: it owns pacing and
// scheduling, polls the clock, and feeds timestamps to animations until they
// report finished. The engine packages own none of that.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
)

// Version information set at build time.
var (
	Version = "0.1.0-dev"
)

var (
	configDir string
	rateHz    int
	duration  int64

	cfg *config.Resolved
)

func Execute() error {
	root := &cobra.Command{
		Use:          "motion",
		Short:        "Demos for the motion reactive-property and tween engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir
			if dir == "" {
				var err error
				dir, err = config.FindProjectRoot()
				if err != nil {
					return err
				}
			}

			var err error
			cfg, err = config.Resolve(dir)
			if err != nil {
				return err
			}

			// Flags override motion.yaml.
			if rateHz > 0 {
				cfg.RateHz = rateHz
			}
			if duration > 0 {
				cfg.DurationMS = duration
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config", "", "directory containing motion.yaml (default: enclosing module root)")
	root.PersistentFlags().IntVar(&rateHz, "rate", 0, "poll rate in Hz (default 120)")
	root.PersistentFlags().Int64Var(&duration, "duration", 0, "animation duration in milliseconds (default 250)")

	root.AddCommand(demoCmd(), colorsCmd(), versionCmd())
	return root.Execute()
}
