package analyzing

import (
	"context"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
	"github.com/vfg2006/retention-analysis/pkg/exitcode"
	"github.com/vfg2006/retention-analysis/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestService_Run(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockLoader := mocks.NewMockRecordLoader(ctrl)
	mockRenderer := mocks.NewMockChartRenderer(ctrl)
	mockWriter := mocks.NewMockArtifactWriter(ctrl)
	mockPrinter := mocks.NewMockReportPrinter(ctrl)
	mockDisplayer := mocks.NewMockDisplayer(ctrl)

	opts := Options{
		Title: "E-commerce Customer Retention Analysis",
		Year:  2024,
		Artifacts: domain.ReportArtifacts{
			CSVPath:   "customer_retention_2024.csv",
			ChartPath: "retention_analysis_2024.png",
		},
	}
	png := []byte("\x89PNG")

	tests := []struct {
		name        string
		withDisplay bool
		setup       func()
		validate    func(t *testing.T, report *domain.AnalysisReport, err error)
	}{
		{
			name: "Pipeline completo sem visualização",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(quarterlyRecords(), nil)
				mockRenderer.EXPECT().RenderChart(quarterlyRecords(), gomock.Any(), gomock.Len(4)).Return(png, nil)

				gomock.InOrder(
					mockPrinter.EXPECT().PrintDocument(gomock.Any()).DoAndReturn(func(doc reporting.Document) error {
						assert.Contains(t, doc.String(), "KEY PERFORMANCE METRICS")
						return nil
					}),
					mockWriter.EXPECT().WriteArtifacts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, report *domain.AnalysisReport) error {
						assert.Equal(t, png, report.Chart)
						assert.Len(t, report.Records, 4)
						return nil
					}),
					mockPrinter.EXPECT().PrintDocument(gomock.Any()).DoAndReturn(func(doc reporting.Document) error {
						assert.Contains(t, doc.String(), "Data saved to 'customer_retention_2024.csv'")
						return nil
					}),
				)
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				require.NoError(t, err)
				assert.Len(t, report.ID, 10)
				assert.InDelta(t, 71.8425, report.Metrics.Average, 1e-9)
				assert.Len(t, report.Gaps, 4)
				assert.Len(t, report.Insights.StrategicRecommendations, 6)
				assert.True(t, strings.HasPrefix(report.Text, "E-commerce Customer Retention Analysis - 2024\n"))
				assert.Contains(t, report.Text, "Visualization saved to 'retention_analysis_2024.png'")
			},
		},
		{
			name:        "Pipeline completo com visualização",
			withDisplay: true,
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(quarterlyRecords(), nil)
				mockRenderer.EXPECT().RenderChart(gomock.Any(), gomock.Any(), gomock.Any()).Return(png, nil)
				mockPrinter.EXPECT().PrintDocument(gomock.Any()).Return(nil).Times(2)
				mockWriter.EXPECT().WriteArtifacts(gomock.Any(), gomock.Any()).Return(nil)
				mockDisplayer.EXPECT().Display(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				require.NoError(t, err)
				assert.NotNil(t, report)
			},
		},
		{
			name: "Fonte de dados indisponível",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).
					Return(nil, pkgerrors.Wrap(domain.ErrDataSource, "conexão recusada"))
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StageLoad, exitcode.ErrDataSource)
				assert.Nil(t, report)
			},
		},
		{
			name: "Coleção vazia",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return([]domain.RetentionRecord{}, nil)
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StageLoad, exitcode.ErrInvalidInput)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			},
		},
		{
			name: "Média zero",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return([]domain.RetentionRecord{
					{Quarter: "Q1", RetentionRate: 0, SequenceIndex: 1},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StageCompute, exitcode.ErrComputation)
			},
		},
		{
			name: "Falha ao renderizar",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(quarterlyRecords(), nil)
				mockRenderer.EXPECT().RenderChart(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, pkgerrors.Wrap(domain.ErrRender, "fonte não encontrada"))
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StageRender, exitcode.ErrRender)
			},
		},
		{
			name: "Falha ao gravar artefatos",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(quarterlyRecords(), nil)
				mockRenderer.EXPECT().RenderChart(gomock.Any(), gomock.Any(), gomock.Any()).Return(png, nil)
				mockPrinter.EXPECT().PrintDocument(gomock.Any()).Return(nil)
				mockWriter.EXPECT().WriteArtifacts(gomock.Any(), gomock.Any()).
					Return(pkgerrors.Wrap(domain.ErrFileWrite, "permissão negada"))
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StagePersist, exitcode.ErrFileWrite)
				assert.Contains(t, err.Error(), "permissão negada")
			},
		},
		{
			name:        "Falha na visualização",
			withDisplay: true,
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(quarterlyRecords(), nil)
				mockRenderer.EXPECT().RenderChart(gomock.Any(), gomock.Any(), gomock.Any()).Return(png, nil)
				mockPrinter.EXPECT().PrintDocument(gomock.Any()).Return(nil).Times(2)
				mockWriter.EXPECT().WriteArtifacts(gomock.Any(), gomock.Any()).Return(nil)
				mockDisplayer.EXPECT().Display(gomock.Any(), gomock.Any()).
					Return(pkgerrors.Wrap(domain.ErrDisplay, "porta em uso"))
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StageDisplay, exitcode.ErrDisplay)
			},
		},
		{
			name: "Erro desconhecido do loader",
			setup: func() {
				mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(nil, errors.New("inesperado"))
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assertAnalysisError(t, err, domain.StageLoad, exitcode.ErrInternal)
				assert.Equal(t, exitcode.StatusInternal, exitcode.FromError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := NewService(mockLoader, mockRenderer, mockWriter, mockPrinter, opts)
			if tt.withDisplay {
				service.WithDisplay(mockDisplayer)
			}

			report, err := service.Run(context.Background())
			tt.validate(t, report, err)
		})
	}
}

func TestService_RunIsDeterministic(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockRecordLoader(ctrl)
	mockRenderer := mocks.NewMockChartRenderer(ctrl)
	mockWriter := mocks.NewMockArtifactWriter(ctrl)
	mockPrinter := mocks.NewMockReportPrinter(ctrl)

	mockLoader.EXPECT().LoadRecords(gomock.Any()).Return(quarterlyRecords(), nil).Times(2)
	mockRenderer.EXPECT().RenderChart(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("png"), nil).Times(2)
	mockWriter.EXPECT().WriteArtifacts(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockPrinter.EXPECT().PrintDocument(gomock.Any()).Return(nil).Times(4)

	service := NewService(mockLoader, mockRenderer, mockWriter, mockPrinter, Options{Title: "Retention", Year: 2024})

	first, err := service.Run(context.Background())
	require.NoError(t, err)
	second, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Text, second.Text)
	assert.NotEqual(t, first.ID, second.ID)
}

func assertAnalysisError(t *testing.T, err error, stage, code string) {
	t.Helper()

	var analysisErr *domain.AnalysisError
	require.True(t, errors.As(err, &analysisErr), "esperado *domain.AnalysisError, obtido %T", err)
	assert.Equal(t, stage, analysisErr.Stage)
	assert.Equal(t, code, analysisErr.Code)
}
