package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/finsecure-hub/internal/tui"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a generated bundle interactively",
		Long: `Open a terminal browser over a generated bundle. Tab switches
tables and r regenerates with the next seed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), tui.WithScenario(cfg))
		},
	}

	addScenarioFlags(cmd)
	return cmd
}
