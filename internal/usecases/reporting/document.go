package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/retention-analysis/internal/domain"
)

const bannerWidth = 60

// TextKind identifica o papel de um trecho do relatório na renderização
type TextKind int

const (
	KindBanner TextKind = iota
	KindRule
	KindTitle
	KindLine
	KindBullet
)

// StyleFunc decora um trecho do relatório (ex: cores no console)
type StyleFunc func(kind TextKind, text string) string

// Section é um bloco titulado do relatório
type Section struct {
	Title    string
	Lines    []string
	Bulleted bool
}

// Document é o relatório textual, sem efeitos colaterais
type Document struct {
	Banner   []string
	Sections []Section
}

// DocumentInput reúne os dados usados para montar o relatório
type DocumentInput struct {
	Title        string
	Year         int
	AnalystEmail string
	Records      []domain.RetentionRecord
	Metrics      domain.MetricsSummary
	Gaps         []domain.QuarterGap
	Insights     domain.InsightReport
}

// BuildDocument monta o relatório principal impresso no console
func BuildDocument(in DocumentInput) Document {
	banner := []string{fmt.Sprintf("%s - %d", in.Title, in.Year)}
	if in.AnalystEmail != "" {
		banner = append(banner, "Analyst Email: "+in.AnalystEmail)
	}

	return Document{
		Banner: banner,
		Sections: []Section{
			{Title: "KEY PERFORMANCE METRICS", Lines: metricLines(in.Metrics)},
			{Title: "QUARTERLY BREAKDOWN", Lines: breakdownLines(in.Gaps)},
			{Title: "KEY FINDINGS", Lines: in.Insights.KeyFindings, Bulleted: true},
			{Title: "BUSINESS IMPLICATIONS", Lines: in.Insights.BusinessImplications, Bulleted: true},
			{Title: "STRATEGIC RECOMMENDATIONS", Lines: in.Insights.StrategicRecommendations, Bulleted: true},
		},
	}
}

// BuildOutputsDocument monta o rodapé com os arquivos gravados
func BuildOutputsDocument(artifacts domain.ReportArtifacts) Document {
	lines := []string{
		fmt.Sprintf("Data saved to '%s'", artifacts.CSVPath),
		fmt.Sprintf("Visualization saved to '%s'", artifacts.ChartPath),
	}
	if artifacts.SummaryPath != "" {
		lines = append(lines, fmt.Sprintf("Summary saved to '%s'", artifacts.SummaryPath))
	}

	return Document{Sections: []Section{{Lines: lines}}}
}

func metricLines(m domain.MetricsSummary) []string {
	volatility := "n/a (single quarter)"
	if m.VolatilityDefined {
		volatility = fmt.Sprintf("%.2f%%", m.Volatility)
	}

	return []string{
		fmt.Sprintf("Average Retention Rate: %.2f%%", m.Average),
		fmt.Sprintf("Industry Target: %g%%", m.Target),
		fmt.Sprintf("Gap to Target: %.2f percentage points", m.GapToTarget),
		fmt.Sprintf("Improvement Needed: %.1f%%", m.RelativeImprovementNeeded),
		fmt.Sprintf("Volatility (Std Dev): %s", volatility),
	}
}

func breakdownLines(gaps []domain.QuarterGap) []string {
	lines := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		lines = append(lines, fmt.Sprintf("%s: %.2f%% (Gap: %.2f%%)", gap.Quarter, gap.RetentionRate, gap.Gap))
	}
	return lines
}

// Render produz o texto do relatório aplicando o estilo informado
func (d Document) Render(style StyleFunc) string {
	if style == nil {
		style = func(_ TextKind, text string) string { return text }
	}

	var b strings.Builder
	rule := strings.Repeat("=", bannerWidth)

	if len(d.Banner) > 0 {
		b.WriteString(style(KindBanner, d.Banner[0]) + "\n")
		b.WriteString(style(KindRule, rule) + "\n")
		for _, line := range d.Banner[1:] {
			b.WriteString(style(KindLine, line) + "\n")
			b.WriteString(style(KindRule, rule) + "\n")
		}
	}

	for _, section := range d.Sections {
		b.WriteString("\n")
		if section.Title != "" {
			b.WriteString(style(KindTitle, section.Title+":") + "\n")
		}
		for _, line := range section.Lines {
			if section.Bulleted {
				b.WriteString(style(KindBullet, "•") + " " + style(KindLine, line) + "\n")
				continue
			}
			b.WriteString(style(KindLine, line) + "\n")
		}
	}

	return b.String()
}

// String retorna o relatório em texto puro
func (d Document) String() string {
	return d.Render(nil)
}
