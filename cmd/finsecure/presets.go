package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/finsecure-hub/internal/cli"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List scenario presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Scenario presets"))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTRANSACTIONS\tFRAUD P\tAMOUNTS\tCUSTOMERS\tTICKETS\tACCESSES")
			for _, name := range scenario.PresetNames() {
				cfg, err := scenario.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s..%s\t%d\t%d\t%d\n",
					name,
					cfg.TransactionCount,
					cfg.FraudProbability,
					cfg.AmountRange.Min.StringFixed(2),
					cfg.AmountRange.Max.StringFixed(2),
					cfg.CustomerCount,
					cfg.TicketCount,
					cfg.AccessCount,
				)
			}
			return tw.Flush()
		},
	}
}
