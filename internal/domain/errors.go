package domain

import (
	"errors"
	"fmt"
)

// Erros da análise de retenção
var (
	// Erros de entrada
	ErrInvalidInput = errors.New("invalid input data")
	ErrDataSource   = errors.New("error reading retention data source")

	// Erros de cálculo
	ErrComputation = errors.New("degenerate statistics")

	// Erros de saída
	ErrRender    = errors.New("error rendering chart")
	ErrFileWrite = errors.New("error writing output file")
	ErrDisplay   = errors.New("error displaying report")
)

// Estágios do pipeline
const (
	StageConfig    = "config"
	StageLoad      = "load"
	StageCompute   = "compute"
	StageRender    = "render"
	StageSummarize = "summarize"
	StagePersist   = "persist"
	StageDisplay   = "display"
)

// AnalysisError é um erro com contexto adicional sobre a etapa que falhou
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para o processo
	Stage   string // Etapa do pipeline
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ErrorCode retorna o código usado para resolver o status de saída
func (e *AnalysisError) ErrorCode() string {
	return e.Code
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, stage string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Stage:   stage,
		Details: details,
	}
}
