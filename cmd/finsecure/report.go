package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/finsecure-hub/internal/cli"
	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/config"
	"github.com/Veraticus/finsecure-hub/internal/export"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/report"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a bundle after the report delay",
		Long: `Generate a bundle, wait out the fixed report delay with a progress
bar, then write it to the output directory. Ctrl+C during the wait
cancels the report and nothing is written.`,
		Example: `  finsecure report --seed 42
  finsecure report --format csv --delay 5s --output ~/reports`,
		RunE: runReport,
	}

	cmd.Flags().String("format", string(export.FormatJSON), "report format (json, yaml, csv)")
	cmd.Flags().Duration("delay", report.DefaultDelay, "simulated report generation time")
	cmd.Flags().String("output", "", "output directory (default: "+config.DefaultOutputDir+")")
	addScenarioFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	_ = viper.BindPFlag("report.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("report.delay", cmd.Flags().Lookup("delay"))
	_ = viper.BindPFlag("export.dir", cmd.Flags().Lookup("output"))

	format, err := export.ParseFormat(viper.GetString("report.format"))
	if err != nil {
		return common.NewUserError("choose json, yaml or csv", err)
	}

	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	dir, err := config.OutputDir(viper.GetString("export.dir"))
	if err != nil {
		return err
	}

	bundle, err := scenario.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate bundle: %w", err)
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Report generation")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	runner, err := report.NewRunner(report.Options{
		Delay:    viper.GetDuration("report.delay"),
		Steps:    report.DefaultSteps,
		Progress: cli.NewProgressBar(cmd.ErrOrStderr(), report.DefaultSteps, "Generating report..."),
	})
	if err != nil {
		return common.NewUserError("invalid report delay", err)
	}

	var written string
	err = runner.Run(ctx, bundle, func(b *model.DatasetBundle) error {
		path, werr := writeReport(dir, b, format)
		written = path
		return werr
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Report ready",
		fmt.Sprintf("%s Scenario: %s (seed %d)\n%s Written to: %s",
			cli.ChartIcon, bundle.Scenario, bundle.Seed, cli.FolderIcon, written)))
	return nil
}

// writeReport writes b under dir and returns the file or directory created.
// A failed write leaves nothing of its own behind.
func writeReport(dir string, b *model.DatasetBundle, format export.Format) (string, error) {
	base := fmt.Sprintf("finsecure-%s-%d", b.Scenario, b.Seed)

	if format == export.FormatCSV {
		path := filepath.Join(dir, base)
		_, statErr := os.Stat(path)
		created := os.IsNotExist(statErr)
		if err := os.MkdirAll(path, 0o750); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}
		written, err := export.WriteCSV(path, b)
		if err != nil {
			if created {
				_ = os.RemoveAll(path)
			} else {
				for _, p := range written {
					_ = os.Remove(p)
				}
			}
			return "", err
		}
		return path, nil
	}

	path := filepath.Join(dir, base+"."+string(format))
	f, err := os.Create(path) //nolint:gosec // path is built from the output dir and bundle metadata
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Write(f, b, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
