package source

import (
	"context"

	"github.com/vfg2006/retention-analysis/infrastructure/storage"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

// CSVLoader lê os registros de um arquivo Quarter,Retention_Rate,Month_Number
type CSVLoader struct {
	path string
}

func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

func (l *CSVLoader) LoadRecords(ctx context.Context) ([]domain.RetentionRecord, error) {
	log.ForContext(ctx).WithField("path", l.path).Debug("Lendo registros do CSV")
	return storage.ReadRecordsFile(l.path)
}
