package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/retention-analysis/internal/api/handler/router"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(finder ReportFinder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: ReportPage(finder),
		},
		{
			Path:    "/v1/reports/:id/chart.png",
			Method:  http.MethodGet,
			Handler: ReportChart(finder),
		},
		{
			Path:    "/v1/reports/:id/summary",
			Method:  http.MethodGet,
			Handler: ReportSummary(finder),
		},
	}
}
