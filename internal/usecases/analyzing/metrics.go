package analyzing

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/internal/domain"
)

// CalculateMetrics calcula as estatísticas descritivas das taxas de retenção.
// Com uma única amostra a volatilidade fica zerada e marcada como indefinida.
func CalculateMetrics(records []domain.RetentionRecord) (domain.MetricsSummary, error) {
	if len(records) == 0 {
		return domain.MetricsSummary{}, errors.Wrap(domain.ErrInvalidInput, "não é possível calcular métricas sem registros")
	}

	rates := domain.Rates(records)

	average := mean(rates)
	minimum, maximum := bounds(rates)
	volatility, defined := sampleStdDev(rates, average)

	gap := domain.IndustryTarget - average

	// Média zero tornaria a melhoria relativa infinita
	if average == 0 {
		return domain.MetricsSummary{}, errors.Wrap(domain.ErrComputation, "média de retenção igual a zero, melhoria relativa indefinida")
	}

	return domain.MetricsSummary{
		Average:                   average,
		Minimum:                   minimum,
		Maximum:                   maximum,
		Volatility:                volatility,
		VolatilityDefined:         defined,
		Target:                    domain.IndustryTarget,
		GapToTarget:               gap,
		RelativeImprovementNeeded: gap / average * 100,
		SampleSize:                len(rates),
	}, nil
}

// CalculateGaps calcula a distância de cada trimestre até o target
func CalculateGaps(records []domain.RetentionRecord, target float64) []domain.QuarterGap {
	gaps := make([]domain.QuarterGap, 0, len(records))
	for _, record := range records {
		gap := target - record.RetentionRate
		gaps = append(gaps, domain.QuarterGap{
			Quarter:       record.Quarter,
			RetentionRate: record.RetentionRate,
			Gap:           gap,
			Severity:      domain.ClassifyGap(gap),
		})
	}
	return gaps
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func bounds(values []float64) (float64, float64) {
	minimum, maximum := values[0], values[0]
	for _, v := range values[1:] {
		minimum = math.Min(minimum, v)
		maximum = math.Max(maximum, v)
	}
	return minimum, maximum
}

// sampleStdDev usa a correção de Bessel (n-1)
func sampleStdDev(values []float64, average float64) (float64, bool) {
	n := len(values)
	if n < 2 {
		return 0, false
	}

	sumSq := 0.0
	for _, v := range values {
		d := v - average
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1)), true
}
