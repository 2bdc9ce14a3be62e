package analyzing

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
)

// RecordLoader define a fonte dos registros de retenção trimestral
type RecordLoader interface {
	// LoadRecords retorna os registros ordenados pelo índice de sequência
	LoadRecords(ctx context.Context) ([]domain.RetentionRecord, error)
}

// ChartRenderer define a renderização do gráfico de dois painéis
type ChartRenderer interface {
	// RenderChart retorna o PNG com a tendência trimestral e os gaps até o target
	RenderChart(records []domain.RetentionRecord, metrics domain.MetricsSummary, gaps []domain.QuarterGap) ([]byte, error)
}

// ArtifactWriter define a persistência dos artefatos de uma execução
type ArtifactWriter interface {
	// WriteArtifacts grava CSV, PNG e resumo nos caminhos de report.Artifacts
	WriteArtifacts(ctx context.Context, report *domain.AnalysisReport) error
}

// ReportPrinter define o destino do relatório textual
type ReportPrinter interface {
	PrintDocument(doc reporting.Document) error
}

// Displayer define o modo de visualização interativa do relatório
type Displayer interface {
	// Display pode bloquear até o usuário encerrar a visualização
	Display(ctx context.Context, report *domain.AnalysisReport) error
}
