package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-analysis/internal/api/handler"
	"github.com/vfg2006/retention-analysis/internal/api/handler/router"
	"github.com/vfg2006/retention-analysis/internal/config"
	"github.com/vfg2006/retention-analysis/internal/domain"
	"github.com/vfg2006/retention-analysis/pkg/apiErrors"
	"github.com/vfg2006/retention-analysis/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Server é o visualizador HTTP local dos relatórios gerados
type Server struct {
	addr    string
	handler http.Handler

	mu      sync.RWMutex
	reports map[string]*domain.AnalysisReport
}

func New(cfg config.Display) *Server {
	s := &Server{
		addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		reports: make(map[string]*domain.AnalysisReport),
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Rota não encontrada", nil)
	})

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Reports(s)...),
		router.WithNotFound(notFound),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(fmt.Sprintf("http://%s", s.addr)),
	}

	s.handler = alice.New(middlewares...).Then(rt)

	return s
}

// Handler retorna a cadeia de middlewares e rotas do visualizador
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Find implementa handler.ReportFinder
func (s *Server) Find(id string) (*domain.AnalysisReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	return report, ok
}

// Register disponibiliza um relatório nas rotas /v1/reports/:id
func (s *Server) Register(report *domain.AnalysisReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[report.ID] = report
}

// URL retorna o endereço da página de um relatório
func (s *Server) URL(report *domain.AnalysisReport) string {
	return fmt.Sprintf("http://%s/v1/reports/%s", s.addr, report.ID)
}

// Display registra o relatório e serve o visualizador até receber
// SIGINT/SIGTERM ou até o contexto ser cancelado
func (s *Server) Display(ctx context.Context, report *domain.AnalysisReport) error {
	s.Register(report)

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(domain.ErrDisplay, "escutando em %s: %v", s.addr, err)
	}

	return s.Serve(ctx, listener, report)
}

// Serve atende no listener informado e bloqueia até o encerramento
func (s *Server) Serve(ctx context.Context, listener net.Listener, report *domain.AnalysisReport) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 2 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": listener.Addr().String(),
		}).Info("Visualizador iniciando")

		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	if report != nil {
		logrus.Infof("Relatório disponível em %s (Ctrl+C para encerrar)", s.URL(report))
	}

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	// Aguardar pelo sinal, pelo cancelamento do contexto ou por falha do servidor
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err, ok := <-serveErr:
		if ok && err != nil {
			return errors.Wrapf(domain.ErrDisplay, "servidor interrompido: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do visualizador")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrapf(domain.ErrDisplay, "desligando visualizador: %v", err)
	}

	logrus.Info("Visualizador desligado com sucesso")
	return nil
}
