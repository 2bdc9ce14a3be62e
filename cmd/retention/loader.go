package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/infrastructure/database"
	"github.com/vfg2006/retention-analysis/infrastructure/repository"
	"github.com/vfg2006/retention-analysis/infrastructure/source"
	"github.com/vfg2006/retention-analysis/internal/config"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/analyzing"
	"github.com/vfg2006/retention-analysis/pkg/exitcode"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

// newRecordLoader escolhe a fonte de dados pelo SOURCE_DRIVER.
// A função de fechamento retornada é sempre válida.
func newRecordLoader(ctx context.Context, cfg *config.Config) (analyzing.RecordLoader, func(), error) {
	switch cfg.Source.Driver {
	case config.SourceCSV:
		return source.NewCSVLoader(cfg.Source.Path), func() {}, nil
	case config.SourcePostgres, config.SourceSQLite:
		repo, conn, err := openRepository(ctx, cfg)
		if err != nil {
			return nil, func() {}, err
		}
		return source.NewSQLLoader(repo, cfg.Report.Year), func() { _ = conn.Close() }, nil
	default:
		return source.NewStaticLoader(), func() {}, nil
	}
}

// openRepository conecta no banco configurado
func openRepository(ctx context.Context, cfg *config.Config) (repository.RetentionRecordRepository, *database.Connection, error) {
	conn, err := database.NewConnection(ctx, cfg.Source.Driver, cfg.Source.Database.DSN)
	if err != nil {
		return nil, nil, dataSourceError(err)
	}

	repo, err := repository.NewRetentionRecordRepository(conn, cfg.Source.Table)
	if err != nil {
		_ = conn.Close()
		return nil, nil, domain.NewAnalysisError(err, exitcode.ErrConfig, domain.StageConfig, "")
	}

	log.L.WithField("driver", conn.Driver()).Info("Conexão com o banco estabelecida com sucesso")
	return repo, conn, nil
}

func dataSourceError(err error) error {
	return domain.NewAnalysisError(errors.Wrap(domain.ErrDataSource, err.Error()), exitcode.ErrDataSource, domain.StageLoad, "")
}
