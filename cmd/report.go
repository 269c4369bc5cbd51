package cmd

import (
	"encoding/json"
	"fmt"

	reportadapter "github.com/bnema/logdata/internal/adapters/render/report"
	tomlreport "github.com/bnema/logdata/internal/adapters/render/toml"
	"github.com/bnema/logdata/internal/application"
	"github.com/bnema/logdata/internal/config"
	"github.com/bnema/logdata/internal/domain"
	"github.com/spf13/cobra"
)

func writeReport(cmd *cobra.Command, app *app, cfg config.Config, report application.Report) error {
	switch cfg.Output.Format {
	case config.OutputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case config.OutputTOML:
		encoded, err := tomlreport.Encode(report)
		if err != nil {
			return fmt.Errorf("encode toml report: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	case config.OutputText:
		rendered, err := app.textRenderer(report, reportadapter.RenderOptions{
			NameWidth: reportadapter.DefaultNameWidth,
			ShowAsOf:  cfg.Output.ShowAsOf,
		})
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		if rendered == "" {
			return nil
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedOutput, cfg.Output.Format)
	}
}
