package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

const filePerm = 0o644

// Persister grava os artefatos de uma execução no sistema de arquivos
type Persister struct{}

// NewPersister cria um novo Persister
func NewPersister() *Persister {
	return &Persister{}
}

// WriteArtifacts grava o CSV, o PNG e, se configurado, o resumo JSON.
// Arquivos existentes são sobrescritos.
func (p *Persister) WriteArtifacts(ctx context.Context, report *domain.AnalysisReport) error {
	logger := log.ForContext(ctx)

	var csvBuf bytes.Buffer
	if err := WriteRecordsCSV(&csvBuf, report.Records); err != nil {
		return errors.Wrapf(domain.ErrFileWrite, "gerando CSV: %v", err)
	}
	if err := writeFile(report.Artifacts.CSVPath, csvBuf.Bytes()); err != nil {
		return err
	}
	logger.WithField("path", report.Artifacts.CSVPath).Debug("CSV gravado")

	if len(report.Chart) == 0 {
		return errors.Wrap(domain.ErrFileWrite, "relatório sem gráfico renderizado")
	}
	if err := writeFile(report.Artifacts.ChartPath, report.Chart); err != nil {
		return err
	}
	logger.WithField("path", report.Artifacts.ChartPath).Debug("Gráfico gravado")

	if report.Artifacts.SummaryPath == "" {
		return nil
	}

	summary, err := reporting.EncodeSummary(report)
	if err != nil {
		return errors.Wrapf(domain.ErrFileWrite, "serializando resumo: %v", err)
	}
	if err := writeFile(report.Artifacts.SummaryPath, summary); err != nil {
		return err
	}
	logger.WithField("path", report.Artifacts.SummaryPath).Debug("Resumo gravado")

	return nil
}

// ReadRecordsFile lê de volta um CSV gravado por WriteArtifacts
func ReadRecordsFile(path string) ([]domain.RetentionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrInvalidInput, "abrindo %s: %v", path, err)
	}
	defer f.Close()

	return ReadRecordsCSV(f)
}

// writeFile cria os diretórios pais e sobrescreve o arquivo
func writeFile(path string, data []byte) error {
	if path == "" {
		return errors.Wrap(domain.ErrFileWrite, "caminho de saída vazio")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(domain.ErrFileWrite, "criando diretório %s: %v", dir, err)
		}
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(domain.ErrFileWrite, "gravando %s: %v", path, err)
	}

	return nil
}
