package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(Param(r, "id")))
	})
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rt := New(
		WithRoutes(Route{Path: "/v1/reports/:id", Method: http.MethodGet, Handler: echo}),
		WithNotFound(notFound),
	)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "Rota com parâmetro", method: http.MethodGet, path: "/v1/reports/abc", expectedStatus: http.StatusOK, expectedBody: "abc"},
		{name: "Rota inexistente", method: http.MethodGet, path: "/nada", expectedStatus: http.StatusTeapot},
		{name: "Método não permitido", method: http.MethodPost, path: "/v1/reports/abc", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}
