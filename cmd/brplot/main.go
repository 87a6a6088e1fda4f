// brplot draws the best-response chart for the two-player payoff model.
//
// Usage:
//
//	brplot [render] [--config cfg.yaml] [--out chart.png] [--show]
//	brplot eval --s1 1 --s2 1
//
// Flags override values from the config file, which override built-in defaults.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/BestResponsePlot/src/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	ro := &renderOptions{root: opts}

	cmd := &cobra.Command{
		Use:           "brplot",
		Short:         "Plot best-response lines for the two-player payoff model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, ro)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error); overrides config")
	ro.bind(cmd)

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newEvalCmd())
	return cmd
}
