package domain

// InsightReport agrupa as conclusões textuais de uma execução
type InsightReport struct {
	KeyFindings              []string `json:"key_findings"`
	BusinessImplications     []string `json:"business_implications"`
	StrategicRecommendations []string `json:"strategic_recommendations"`
}

// ReportArtifacts guarda os caminhos dos arquivos gerados
type ReportArtifacts struct {
	CSVPath     string `json:"csv_path"`
	ChartPath   string `json:"chart_path"`
	SummaryPath string `json:"summary_path,omitempty"`
}

// AnalysisReport é o resultado completo de uma execução do pipeline
type AnalysisReport struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Year      int               `json:"year"`
	Records   []RetentionRecord `json:"records"`
	Metrics   MetricsSummary    `json:"metrics"`
	Gaps      []QuarterGap      `json:"gaps"`
	Insights  InsightReport     `json:"insights"`
	Artifacts ReportArtifacts   `json:"artifacts"`
	Chart     []byte            `json:"-"` // PNG renderizado
	Text      string            `json:"-"` // Relatório formatado para o console
}

// ReportSummary é a visão serializável de um AnalysisReport
type ReportSummary struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Year     int               `json:"year"`
	Records  []RetentionRecord `json:"records"`
	Metrics  MetricsSummary    `json:"metrics"`
	Gaps     []QuarterGap      `json:"gaps"`
	Insights InsightReport     `json:"insights"`
}

// Summary monta a visão serializável do relatório
func (r *AnalysisReport) Summary() ReportSummary {
	return ReportSummary{
		ID:       r.ID,
		Title:    r.Title,
		Year:     r.Year,
		Records:  r.Records,
		Metrics:  r.Metrics,
		Gaps:     r.Gaps,
		Insights: r.Insights,
	}
}
