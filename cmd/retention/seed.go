package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retention-analysis/infrastructure/source"
	"github.com/vfg2006/retention-analysis/infrastructure/storage"
	"github.com/vfg2006/retention-analysis/internal/config"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/analyzing"
	"github.com/vfg2006/retention-analysis/pkg/exitcode"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

func newSeedCmd(stderr io.Writer) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load quarterly retention rows into the configured SQL table",
		Long: `Creates the retention table if needed and replaces the rows of REPORT_YEAR
with the built-in dataset, or with the rows of --csv when given.
Requires SOURCE_DRIVER=postgres or SOURCE_DRIVER=sqlite3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(stderr)
			if err != nil {
				return err
			}

			if cfg.Source.Driver != config.SourcePostgres && cfg.Source.Driver != config.SourceSQLite {
				return domain.NewAnalysisError(
					errors.Errorf("seed requer SOURCE_DRIVER postgres ou sqlite3, atual: %q", cfg.Source.Driver),
					exitcode.ErrConfig, domain.StageConfig, "")
			}

			records := source.DefaultRecords()
			if csvPath != "" {
				if records, err = storage.ReadRecordsFile(csvPath); err != nil {
					return domain.NewAnalysisError(err, exitcode.ErrInvalidInput, domain.StageLoad, "")
				}
			}
			if err := analyzing.ValidateRecords(records); err != nil {
				return domain.NewAnalysisError(err, exitcode.ErrInvalidInput, domain.StageLoad, "")
			}

			ctx := cmd.Context()
			repo, conn, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repo.EnsureSchema(ctx); err != nil {
				return dataSourceError(err)
			}
			if err := repo.ReplaceYear(ctx, cfg.Report.Year, records); err != nil {
				return dataSourceError(err)
			}

			log.L.WithFields(log.Fields{
				"table":   cfg.Source.Table,
				"year":    cfg.Report.Year,
				"records": len(records),
			}).Info("Registros de retenção gravados")
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file with Quarter,Retention_Rate,Month_Number rows")

	return cmd
}
