// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// IndustryTarget é o benchmark de retenção do setor, em pontos percentuais
const IndustryTarget = 85.0

// AlertGapThreshold é o gap (em pontos percentuais) acima do qual um trimestre
// é considerado crítico. A comparação é estrita: um gap de exatamente 10 é aviso.
const AlertGapThreshold = 10.0

// RetentionRecord representa a taxa de retenção de um trimestre
type RetentionRecord struct {
	Quarter       string  `json:"quarter"`        // Rótulo do trimestre (ex: Q1)
	RetentionRate float64 `json:"retention_rate"` // Percentual entre 0 e 100
	SequenceIndex int     `json:"month_number"`   // Ordem de plotagem
}

// GapSeverity classifica o gap de um trimestre em relação ao target
type GapSeverity string

const (
	GapSeverityAlert   GapSeverity = "alert"
	GapSeverityWarning GapSeverity = "warning"
)

// ClassifyGap retorna alert se o gap for estritamente maior que o limite, warning caso contrário
func ClassifyGap(gap float64) GapSeverity {
	if gap > AlertGapThreshold {
		return GapSeverityAlert
	}
	return GapSeverityWarning
}

// QuarterGap é a distância de um trimestre até o target
type QuarterGap struct {
	Quarter       string      `json:"quarter"`
	RetentionRate float64     `json:"retention_rate"`
	Gap           float64     `json:"gap"`
	Severity      GapSeverity `json:"severity"`
}

// Rates extrai as taxas de retenção na ordem dos registros
func Rates(records []RetentionRecord) []float64 {
	rates := make([]float64, 0, len(records))
	for _, record := range records {
		rates = append(rates, record.RetentionRate)
	}
	return rates
}
