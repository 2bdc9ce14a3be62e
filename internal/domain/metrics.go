package domain

// MetricsSummary agrega as estatísticas de uma coleção de RetentionRecord.
// É calculado uma vez por execução e nunca alterado depois.
type MetricsSummary struct {
	Average                   float64 `json:"average_retention"`
	Minimum                   float64 `json:"min_retention"`
	Maximum                   float64 `json:"max_retention"`
	Volatility                float64 `json:"volatility"`         // Desvio padrão amostral (n-1)
	VolatilityDefined         bool    `json:"volatility_defined"` // false com menos de duas amostras
	Target                    float64 `json:"industry_target"`
	GapToTarget               float64 `json:"gap_to_target"`
	RelativeImprovementNeeded float64 `json:"improvement_needed"`
	SampleSize                int     `json:"sample_size"`
}

// BelowTarget indica se a média está abaixo do benchmark
func (m MetricsSummary) BelowTarget() bool {
	return m.GapToTarget > 0
}
