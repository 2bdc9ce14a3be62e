package analyzing

import (
	"context"
	"errors"

	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
	"github.com/vfg2006/retention-analysis/pkg/exitcode"
	"github.com/vfg2006/retention-analysis/pkg/log"
	"github.com/vfg2006/retention-analysis/pkg/utils"
)

// Options identifica o relatório e onde seus artefatos serão gravados
type Options struct {
	Title        string
	Year         int
	AnalystEmail string
	Artifacts    domain.ReportArtifacts
}

// Service executa o pipeline de análise de retenção
type Service struct {
	loader    RecordLoader
	renderer  ChartRenderer
	writer    ArtifactWriter
	printer   ReportPrinter
	displayer Displayer
	opts      Options
}

// NewService cria uma nova instância do pipeline
func NewService(
	loader RecordLoader,
	renderer ChartRenderer,
	writer ArtifactWriter,
	printer ReportPrinter,
	opts Options,
) *Service {
	return &Service{
		loader:   loader,
		renderer: renderer,
		writer:   writer,
		printer:  printer,
		opts:     opts,
	}
}

// WithDisplay habilita o modo de visualização interativa ao final da execução
func (s *Service) WithDisplay(displayer Displayer) *Service {
	s.displayer = displayer
	return s
}

// Run executa Load, Compute, Render, Summarize, Persist e Display, nessa ordem.
// Qualquer falha interrompe a execução e é retornada como *domain.AnalysisError.
func (s *Service) Run(ctx context.Context) (*domain.AnalysisReport, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("year", s.opts.Year)

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, domain.NewAnalysisError(err, exitcode.ErrInternal, domain.StageLoad, "falha ao gerar ID do relatório")
	}
	logger = logger.WithField("report_id", reportID)

	report := &domain.AnalysisReport{
		ID:        reportID,
		Title:     s.opts.Title,
		Year:      s.opts.Year,
		Artifacts: s.opts.Artifacts,
	}

	// Load
	logger.WithField("stage", domain.StageLoad).Debug("Carregando registros de retenção")
	records, err := s.loader.LoadRecords(ctx)
	if err != nil {
		return nil, s.fail(logger, domain.StageLoad, err)
	}
	if err := ValidateRecords(records); err != nil {
		return nil, s.fail(logger, domain.StageLoad, err)
	}
	report.Records = records
	logger.WithField("records", len(records)).Info("Registros carregados")

	// Compute
	metrics, err := CalculateMetrics(records)
	if err != nil {
		return nil, s.fail(logger, domain.StageCompute, err)
	}
	report.Metrics = metrics
	report.Gaps = CalculateGaps(records, metrics.Target)
	logger.WithFields(log.Fields{
		"stage":   domain.StageCompute,
		"average": utils.RoundWithTwoDecimalPlace(metrics.Average),
		"gap":     utils.RoundWithTwoDecimalPlace(metrics.GapToTarget),
	}).Info("Métricas calculadas")

	// Render
	chart, err := s.renderer.RenderChart(records, metrics, report.Gaps)
	if err != nil {
		return nil, s.fail(logger, domain.StageRender, err)
	}
	report.Chart = chart
	logger.WithFields(log.Fields{"stage": domain.StageRender, "bytes": len(chart)}).Debug("Gráfico renderizado")

	// Summarize
	report.Insights = reporting.GenerateInsights(records, metrics)
	document := reporting.BuildDocument(reporting.DocumentInput{
		Title:        s.opts.Title,
		Year:         s.opts.Year,
		AnalystEmail: s.opts.AnalystEmail,
		Records:      records,
		Metrics:      metrics,
		Gaps:         report.Gaps,
		Insights:     report.Insights,
	})
	outputs := reporting.BuildOutputsDocument(report.Artifacts)
	report.Text = document.String() + outputs.String()

	// Persist
	if err := s.printer.PrintDocument(document); err != nil {
		return nil, s.fail(logger, domain.StagePersist, err)
	}
	if err := s.writer.WriteArtifacts(ctx, report); err != nil {
		return nil, s.fail(logger, domain.StagePersist, err)
	}
	if err := s.printer.PrintDocument(outputs); err != nil {
		return nil, s.fail(logger, domain.StagePersist, err)
	}
	logger.WithFields(log.Fields{
		"stage": domain.StagePersist,
		"csv":   report.Artifacts.CSVPath,
		"chart": report.Artifacts.ChartPath,
	}).Info("Artefatos gravados")

	// Display
	if s.displayer != nil {
		if err := s.displayer.Display(ctx, report); err != nil {
			return nil, s.fail(logger, domain.StageDisplay, err)
		}
	}

	logger.Info("Análise concluída")
	return report, nil
}

func (s *Service) fail(logger log.Logger, stage string, err error) error {
	analysisErr := domain.NewAnalysisError(err, errorCode(err), stage, "")
	logger.WithError(err).WithFields(log.Fields{
		"stage": stage,
		"code":  analysisErr.Code,
	}).Error("Falha no pipeline de análise")
	return analysisErr
}

// errorCode traduz os erros de domínio para os códigos de saída
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return exitcode.ErrInvalidInput
	case errors.Is(err, domain.ErrDataSource):
		return exitcode.ErrDataSource
	case errors.Is(err, domain.ErrComputation):
		return exitcode.ErrComputation
	case errors.Is(err, domain.ErrRender):
		return exitcode.ErrRender
	case errors.Is(err, domain.ErrFileWrite):
		return exitcode.ErrFileWrite
	case errors.Is(err, domain.ErrDisplay):
		return exitcode.ErrDisplay
	default:
		return exitcode.ErrInternal
	}
}
