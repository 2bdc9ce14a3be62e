package handler

import (
	"html/template"
	"net/http"

	"github.com/vfg2006/retention-analysis/internal/api/handler/router"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
	"github.com/vfg2006/retention-analysis/pkg/apiErrors"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

// ReportFinder localiza relatórios gerados nesta execução
type ReportFinder interface {
	Find(id string) (*domain.AnalysisReport, bool)
}

var reportPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.Year}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #2c3e50; }
img { max-width: 100%; border: 1px solid #ddd; }
pre { background: #f7f7f7; padding: 1rem; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>{{.Title}} - {{.Year}}</h1>
<img src="/v1/reports/{{.ID}}/chart.png" alt="Retention analysis {{.Year}}">
<pre>{{.Text}}</pre>
<p><a href="/v1/reports/{{.ID}}/summary">JSON summary</a></p>
</body>
</html>
`))

func findReport(finder ReportFinder, w http.ResponseWriter, r *http.Request) (*domain.AnalysisReport, bool) {
	id := router.Param(r, "id")

	report, ok := finder.Find(id)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório não encontrado", map[string]string{"id": id})
		return nil, false
	}
	return report, true
}

// ReportPage exibe o gráfico e o relatório textual em uma página HTML
func ReportPage(finder ReportFinder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, ok := findReport(finder, w, r)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := reportPage.Execute(w, report); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar página do relatório")
		}
	})
}

// ReportChart retorna o PNG do gráfico
func ReportChart(finder ReportFinder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, ok := findReport(finder, w, r)
		if !ok {
			return
		}

		if len(report.Chart) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrChartMissing, "Relatório sem gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(report.Chart); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar gráfico")
		}
	})
}

// ReportSummary retorna métricas, gaps e insights em JSON
func ReportSummary(finder ReportFinder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, ok := findReport(finder, w, r)
		if !ok {
			return
		}

		data, err := reporting.EncodeSummary(report)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(data); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resumo")
		}
	})
}
