package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retention-analysis/internal/config"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/pkg/log"
)

func testReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		ID:    "abc123DEF0",
		Title: "E-commerce Customer Retention Analysis",
		Year:  2024,
		Chart: []byte("\x89PNG"),
		Text:  "relatório",
	}
}

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()

	server := New(config.Display{Host: "localhost", Port: "8000"})
	server.Register(testReport())

	tests := []struct {
		name           string
		path           string
		origin         string
		expectedStatus int
		expectedCors   string
	}{
		{name: "Página registrada", path: "/v1/reports/abc123DEF0", expectedStatus: http.StatusOK},
		{name: "Gráfico registrado", path: "/v1/reports/abc123DEF0/chart.png", expectedStatus: http.StatusOK},
		{name: "Relatório desconhecido", path: "/v1/reports/outro", expectedStatus: http.StatusNotFound},
		{name: "Rota desconhecida", path: "/nada", expectedStatus: http.StatusNotFound},
		{name: "CORS para a própria origem", path: "/healthcheck", origin: "http://localhost:8000", expectedStatus: http.StatusOK, expectedCors: "http://localhost:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCors, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	assert.Equal(t, "http://localhost:8000/v1/reports/abc123DEF0", server.URL(testReport()))
}

func TestServer_ServeUntilContextCancel(t *testing.T) {
	log.SetupTestLogger()

	var logs bytes.Buffer
	logrus.SetOutput(&logs)
	defer log.SetupTestLogger()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	server := New(config.Display{Host: "127.0.0.1", Port: port})
	report := testReport()
	server.Register(report)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- server.Serve(ctx, listener, report)
	}()

	url := "http://" + listener.Addr().String() + "/v1/reports/abc123DEF0/chart.png"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "\x89PNG"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("visualizador não encerrou após o cancelamento do contexto")
	}

	assert.Contains(t, logs.String(), "Relatório disponível em "+server.URL(report))
}

func TestServer_DisplayAddressInUse(t *testing.T) {
	log.SetupTestLogger()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	server := New(config.Display{Host: "127.0.0.1", Port: port})
	err = server.Display(context.Background(), testReport())

	assert.True(t, errors.Is(err, domain.ErrDisplay))
	_, found := server.Find("abc123DEF0")
	assert.True(t, found)
}
