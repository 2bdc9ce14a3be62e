package reporting

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeSummary serializa o resumo do relatório com valores arredondados em duas casas
func EncodeSummary(report *domain.AnalysisReport) ([]byte, error) {
	summary := report.Summary()

	m := &summary.Metrics
	m.Average = utils.RoundWithTwoDecimalPlace(m.Average)
	m.Minimum = utils.RoundWithTwoDecimalPlace(m.Minimum)
	m.Maximum = utils.RoundWithTwoDecimalPlace(m.Maximum)
	m.Volatility = utils.RoundWithTwoDecimalPlace(m.Volatility)
	m.GapToTarget = utils.RoundWithTwoDecimalPlace(m.GapToTarget)
	m.RelativeImprovementNeeded = utils.RoundWithTwoDecimalPlace(m.RelativeImprovementNeeded)

	gaps := make([]domain.QuarterGap, len(summary.Gaps))
	for i, gap := range summary.Gaps {
		gap.Gap = utils.RoundWithTwoDecimalPlace(gap.Gap)
		gaps[i] = gap
	}
	summary.Gaps = gaps

	return json.MarshalIndent(summary, "", "  ")
}
