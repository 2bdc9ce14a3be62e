package source

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/infrastructure/repository"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

// SQLLoader lê os registros de um ano a partir do repositório
type SQLLoader struct {
	repo repository.RetentionRecordRepository
	year int
}

func NewSQLLoader(repo repository.RetentionRecordRepository, year int) *SQLLoader {
	return &SQLLoader{repo: repo, year: year}
}

func (l *SQLLoader) LoadRecords(ctx context.Context) ([]domain.RetentionRecord, error) {
	records, err := l.repo.ListByYear(ctx, l.year)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDataSource, "ano %d: %v", l.year, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"year":    l.year,
		"records": len(records),
	}).Debug("Registros lidos do banco")

	return records, nil
}
