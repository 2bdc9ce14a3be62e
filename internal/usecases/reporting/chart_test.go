package reporting

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retention-analysis/internal/domain"
)

func quarterlyGaps() []domain.QuarterGap {
	gaps := make([]domain.QuarterGap, 0, 4)
	for _, record := range quarterlyRecords() {
		gap := domain.IndustryTarget - record.RetentionRate
		gaps = append(gaps, domain.QuarterGap{
			Quarter:       record.Quarter,
			RetentionRate: record.RetentionRate,
			Gap:           gap,
			Severity:      domain.ClassifyGap(gap),
		})
	}
	return gaps
}

func TestChartRenderer_RenderChart(t *testing.T) {
	renderer := NewChartRenderer(ChartOptions{Year: 2024, Width: 800, Height: 400, DPI: 100})

	data, err := renderer.RenderChart(quarterlyRecords(), quarterlyMetrics(), quarterlyGaps())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestChartRenderer_SingleRecord(t *testing.T) {
	renderer := NewChartRenderer(ChartOptions{Year: 2024, Width: 600, Height: 300, DPI: 100})
	records := []domain.RetentionRecord{{Quarter: "Q1", RetentionRate: 70, SequenceIndex: 1}}
	gaps := []domain.QuarterGap{{Quarter: "Q1", RetentionRate: 70, Gap: 15, Severity: domain.GapSeverityAlert}}
	metrics := domain.MetricsSummary{Average: 70, Minimum: 70, Maximum: 70, Target: 85, GapToTarget: 15}

	data, err := renderer.RenderChart(records, metrics, gaps)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestChartRenderer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    ChartOptions
		records []domain.RetentionRecord
	}{
		{name: "Sem registros", opts: ChartOptions{Year: 2024, Width: 600, Height: 300, DPI: 100}},
		{name: "Largura inválida", opts: ChartOptions{Year: 2024, Width: 0, Height: 300, DPI: 100}, records: quarterlyRecords()},
		{name: "DPI zerado", opts: ChartOptions{Year: 2024, Width: 600, Height: 300}, records: quarterlyRecords()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChartRenderer(tt.opts).RenderChart(tt.records, quarterlyMetrics(), quarterlyGaps())
			assert.True(t, errors.Is(err, domain.ErrRender))
		})
	}
}

func TestGapColor(t *testing.T) {
	assert.Equal(t, ColorActual, GapColor(domain.GapSeverityAlert))
	assert.Equal(t, ColorAverage, GapColor(domain.GapSeverityWarning))
}
