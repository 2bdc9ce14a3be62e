package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGap(t *testing.T) {
	tests := []struct {
		name     string
		gap      float64
		expected GapSeverity
	}{
		{name: "Gap bem acima do limite", gap: 15.93, expected: GapSeverityAlert},
		{name: "Gap logo acima do limite", gap: 10.0001, expected: GapSeverityAlert},
		{name: "Gap exatamente no limite deve ser aviso", gap: 10.0, expected: GapSeverityWarning},
		{name: "Gap abaixo do limite", gap: 9.99, expected: GapSeverityWarning},
		{name: "Gap negativo (acima do target)", gap: -2.5, expected: GapSeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyGap(tt.gap))
		})
	}
}

func TestRates(t *testing.T) {
	records := []RetentionRecord{
		{Quarter: "Q1", RetentionRate: 69.07, SequenceIndex: 1},
		{Quarter: "Q2", RetentionRate: 74.58, SequenceIndex: 2},
	}

	assert.Equal(t, []float64{69.07, 74.58}, Rates(records))
	assert.Empty(t, Rates(nil))
}

func TestAnalysisError(t *testing.T) {
	err := NewAnalysisError(ErrComputation, "CMP_001", StageCompute, "average retention is zero")

	assert.Equal(t, "degenerate statistics: average retention is zero", err.Error())
	assert.Equal(t, "CMP_001", err.ErrorCode())
	assert.True(t, errors.Is(err, ErrComputation))

	wrapped := fmt.Errorf("pipeline: %w", err)
	var analysisErr *AnalysisError
	assert.True(t, errors.As(wrapped, &analysisErr))
	assert.Equal(t, StageCompute, analysisErr.Stage)

	noDetails := NewAnalysisError(ErrFileWrite, "OUT_002", StagePersist, "")
	assert.Equal(t, ErrFileWrite.Error(), noDetails.Error())
}

func TestMetricsSummaryBelowTarget(t *testing.T) {
	assert.True(t, MetricsSummary{GapToTarget: 13.1575}.BelowTarget())
	assert.False(t, MetricsSummary{GapToTarget: 0}.BelowTarget())
	assert.False(t, MetricsSummary{GapToTarget: -1}.BelowTarget())
}
