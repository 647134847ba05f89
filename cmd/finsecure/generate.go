package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/finsecure-hub/internal/cli"
	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/config"
	"github.com/Veraticus/finsecure-hub/internal/export"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

const formatTable = "table"

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset bundle",
		Long: `Generate every dashboard table for a scenario and print it.

The table format shows the KPI cards and the first rows of each table.
json and yaml write the whole bundle to stdout; csv writes one file per
table into --output.`,
		Example: `  finsecure generate --seed 42
  finsecure generate --preset high-risk --format json
  finsecure generate --format csv --output ./exports`,
		RunE: runGenerate,
	}

	cmd.Flags().String("format", formatTable, "output format (table, json, yaml, csv)")
	cmd.Flags().String("output", "", "directory for csv output (default: "+config.DefaultOutputDir+")")
	cmd.Flags().Int("rows", 10, "rows per table in table format (0 for all)")
	addScenarioFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	rows, _ := cmd.Flags().GetInt("rows")
	_ = viper.BindPFlag("export.dir", cmd.Flags().Lookup("output"))

	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	var exportFormat export.Format
	if format != formatTable {
		if exportFormat, err = export.ParseFormat(format); err != nil {
			return common.NewUserError("choose table, json, yaml or csv", err)
		}
	}

	bundle, err := scenario.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate bundle: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case format == formatTable:
		return cli.RenderBundle(out, bundle, rows)

	case exportFormat == export.FormatCSV:
		dir, err := config.OutputDir(viper.GetString("export.dir"))
		if err != nil {
			return err
		}
		paths, err := export.WriteCSV(dir, bundle)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Wrote %d CSV files to %s", len(paths), dir)))
		return nil

	default:
		return export.Write(out, bundle, exportFormat)
	}
}
