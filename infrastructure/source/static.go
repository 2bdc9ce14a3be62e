// Package source contém as implementações de analyzing.RecordLoader
package source

import (
	"context"

	"github.com/vfg2006/retention-analysis/internal/domain"
)

// StaticLoader retorna o dataset trimestral fixo de 2024
type StaticLoader struct{}

func NewStaticLoader() *StaticLoader {
	return &StaticLoader{}
}

func (l *StaticLoader) LoadRecords(_ context.Context) ([]domain.RetentionRecord, error) {
	return DefaultRecords(), nil
}

// DefaultRecords retorna uma cópia nova do dataset de 2024 a cada chamada
func DefaultRecords() []domain.RetentionRecord {
	return []domain.RetentionRecord{
		{Quarter: "Q1", RetentionRate: 69.07, SequenceIndex: 1},
		{Quarter: "Q2", RetentionRate: 74.58, SequenceIndex: 2},
		{Quarter: "Q3", RetentionRate: 69.07, SequenceIndex: 3},
		{Quarter: "Q4", RetentionRate: 74.65, SequenceIndex: 4},
	}
}
