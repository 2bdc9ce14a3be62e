package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retention-analysis/infrastructure/console"
	"github.com/vfg2006/retention-analysis/infrastructure/storage"
	"github.com/vfg2006/retention-analysis/internal/api"
	"github.com/vfg2006/retention-analysis/internal/config"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/analyzing"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
	"github.com/vfg2006/retention-analysis/pkg/exitcode"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "retention",
		Short: "Quarterly customer retention analysis",
		Long: `Computes descriptive statistics over quarterly customer retention rates,
renders a two-panel chart, prints findings and recommendations, and writes
the CSV and PNG artifacts. Configuration comes from the environment or a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(stderr)
			if err != nil {
				return err
			}

			_, err = runAnalysis(cmd.Context(), cfg, stdout)
			return err
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.AddCommand(newSeedCmd(stderr))

	return rootCmd
}

// loadConfig configura os logs e carrega a configuração do ambiente
func loadConfig(stderr io.Writer) (*config.Config, error) {
	log.Configure(stderr, "info")

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, domain.NewAnalysisError(err, exitcode.ErrConfig, domain.StageConfig, "")
	}

	log.Configure(stderr, cfg.App.LogLevel)
	logrus.Debugf("Nível de log configurado para: %s", cfg.App.LogLevel)

	return cfg, nil
}

// runAnalysis monta as dependências a partir da configuração e executa o pipeline
func runAnalysis(ctx context.Context, cfg *config.Config, stdout io.Writer) (*domain.AnalysisReport, error) {
	loader, closeLoader, err := newRecordLoader(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeLoader()

	renderer := reporting.NewChartRenderer(reporting.ChartOptions{
		Year:   cfg.Report.Year,
		Width:  cfg.Output.ChartWidth,
		Height: cfg.Output.ChartHeight,
		DPI:    cfg.Output.ChartDPI,
	})

	// Cores só no stdout real; color.NoColor já considera TTY e NO_COLOR
	printer := console.NewPrinter(stdout, stdout == io.Writer(os.Stdout) && !color.NoColor)

	service := analyzing.NewService(loader, renderer, storage.NewPersister(), printer, analyzing.Options{
		Title:        cfg.Report.Title,
		Year:         cfg.Report.Year,
		AnalystEmail: cfg.Report.AnalystEmail,
		Artifacts: domain.ReportArtifacts{
			CSVPath:     cfg.Output.CSVPath,
			ChartPath:   cfg.Output.ChartPath,
			SummaryPath: cfg.Output.SummaryPath,
		},
	})

	if cfg.Display.Mode == config.DisplayServe {
		service.WithDisplay(api.New(cfg.Display))
	}

	return service.Run(ctx)
}
