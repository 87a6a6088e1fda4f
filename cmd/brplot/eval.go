package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/BestResponsePlot/src/payoff"
)

func newEvalCmd() *cobra.Command {
	var s1, s2 float64
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print both payoffs at a strategy profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "U1(%g, %g) = %g\nU2(%g, %g) = %g\n",
				s1, s2, payoff.U1(s1, s2), s1, s2, payoff.U2(s1, s2))
			return err
		},
	}
	cmd.Flags().Float64Var(&s1, "s1", 0, "player 1 strategy")
	cmd.Flags().Float64Var(&s2, "s2", 0, "player 2 strategy")
	return cmd
}
