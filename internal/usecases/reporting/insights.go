package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/retention-analysis/internal/domain"
)

// HighVolatilityThreshold é o desvio padrão (em pontos percentuais) a partir do
// qual a retenção é considerada inconsistente entre trimestres
const HighVolatilityThreshold = 2.0

var strategicRecommendations = []string{
	"Implement targeted retention campaigns focusing on at-risk customer segments",
	"Develop personalized engagement strategies based on customer behavior patterns",
	"Invest in customer experience optimization across all touchpoints",
	"Create loyalty programs with tiered benefits to increase customer stickiness",
	"Implement predictive analytics to identify churn risk early",
	"Establish quarterly retention targets with monthly monitoring",
}

// GenerateInsights monta as conclusões a partir de templates fixos
func GenerateInsights(records []domain.RetentionRecord, metrics domain.MetricsSummary) domain.InsightReport {
	return domain.InsightReport{
		KeyFindings: []string{
			targetFinding(metrics),
			volatilityFinding(metrics),
			patternFinding(records, metrics.Average),
			improvementFinding(metrics),
		},
		BusinessImplications:     businessImplications(metrics),
		StrategicRecommendations: append([]string(nil), strategicRecommendations...),
	}
}

func targetFinding(m domain.MetricsSummary) string {
	switch {
	case m.GapToTarget > 0:
		return fmt.Sprintf("Average retention rate of %.2f%% is %.2f percentage points below industry target", m.Average, m.GapToTarget)
	case m.GapToTarget < 0:
		return fmt.Sprintf("Average retention rate of %.2f%% exceeds industry target by %.2f percentage points", m.Average, -m.GapToTarget)
	default:
		return fmt.Sprintf("Average retention rate of %.2f%% meets the industry target", m.Average)
	}
}

func volatilityFinding(m domain.MetricsSummary) string {
	if !m.VolatilityDefined {
		return "Volatility cannot be assessed from a single quarter of data"
	}
	if highVolatility(m) {
		return fmt.Sprintf("High volatility (%.2f%% std dev) indicates inconsistent customer experience", m.Volatility)
	}
	return fmt.Sprintf("Low volatility (%.2f%% std dev) indicates a consistent customer experience", m.Volatility)
}

func improvementFinding(m domain.MetricsSummary) string {
	switch {
	case m.GapToTarget > 0:
		return fmt.Sprintf("Need %.1f%% relative improvement to reach industry benchmark", m.RelativeImprovementNeeded)
	case m.GapToTarget == 0:
		return "Current average meets the industry benchmark; no improvement needed"
	}
	return fmt.Sprintf("Current average is %.1f%% above the industry benchmark", -m.RelativeImprovementNeeded)
}

// patternFinding descreve como os trimestres se distribuem em torno da média
func patternFinding(records []domain.RetentionRecord, average float64) string {
	if len(records) == 0 {
		return "No quarterly data available to describe a pattern"
	}

	var low, high []domain.RetentionRecord
	for _, record := range records {
		if record.RetentionRate < average {
			low = append(low, record)
		} else {
			high = append(high, record)
		}
	}

	if len(low) == 0 || len(high) == 0 {
		return fmt.Sprintf("Retention held steady at ~%d%% across %s", approxRate(records), quarterList(records))
	}

	if len(records) >= 3 && alternates(records, average) {
		return fmt.Sprintf("Alternating pattern between ~%d%% (%s) and ~%d%% (%s) suggests seasonal or operational factors",
			approxRate(low), quarterList(low), approxRate(high), quarterList(high))
	}

	first, last := records[0], records[len(records)-1]
	switch {
	case monotonic(records, func(a, b float64) bool { return b > a }):
		return fmt.Sprintf("Retention improved every quarter, from %.2f%% (%s) to %.2f%% (%s)",
			first.RetentionRate, first.Quarter, last.RetentionRate, last.Quarter)
	case monotonic(records, func(a, b float64) bool { return b < a }):
		return fmt.Sprintf("Retention declined every quarter, from %.2f%% (%s) to %.2f%% (%s)",
			first.RetentionRate, first.Quarter, last.RetentionRate, last.Quarter)
	}

	return fmt.Sprintf("Retention split between ~%d%% (%s) and ~%d%% (%s), pointing to uneven quarterly performance",
		approxRate(low), quarterList(low), approxRate(high), quarterList(high))
}

func businessImplications(m domain.MetricsSummary) []string {
	implications := make([]string, 0, 4)

	if m.BelowTarget() {
		implications = append(implications, "Declining customer loyalty directly impacts lifetime value and revenue growth")
	} else {
		implications = append(implications, "Customer loyalty at or above benchmark supports lifetime value and revenue growth")
	}

	if highVolatility(m) {
		implications = append(implications, "High retention volatility suggests operational inefficiencies in customer service delivery")
	} else {
		implications = append(implications, "Stable retention suggests predictable customer service delivery")
	}

	if m.BelowTarget() {
		implications = append(implications,
			"Below-benchmark performance may indicate competitive disadvantages in market positioning",
			fmt.Sprintf("Revenue loss estimated at %d+ percentage points of customer base annually", int(math.Floor(m.GapToTarget))),
		)
	} else {
		implications = append(implications, "Above-benchmark performance signals a competitive advantage in market positioning")
	}

	return implications
}

func highVolatility(m domain.MetricsSummary) bool {
	return m.VolatilityDefined && m.Volatility >= HighVolatilityThreshold
}

// alternates indica se cada trimestre troca de lado em relação à média
func alternates(records []domain.RetentionRecord, average float64) bool {
	for i := 1; i < len(records); i++ {
		prevLow := records[i-1].RetentionRate < average
		currLow := records[i].RetentionRate < average
		if prevLow == currLow {
			return false
		}
	}
	return true
}

func monotonic(records []domain.RetentionRecord, step func(a, b float64) bool) bool {
	for i := 1; i < len(records); i++ {
		if !step(records[i-1].RetentionRate, records[i].RetentionRate) {
			return false
		}
	}
	return true
}

// approxRate retorna a média do grupo truncada para o inteiro inferior
func approxRate(records []domain.RetentionRecord) int {
	sum := 0.0
	for _, record := range records {
		sum += record.RetentionRate
	}
	return int(math.Floor(sum / float64(len(records))))
}

func quarterList(records []domain.RetentionRecord) string {
	quarters := make([]string, 0, len(records))
	for _, record := range records {
		quarters = append(quarters, record.Quarter)
	}
	return strings.Join(quarters, ", ")
}
