package exitcode

import (
	"errors"
	"fmt"
	"io"
)

// Códigos de erro do pipeline
const (
	// Erros de entrada (INP)
	ErrInvalidInput = "INP_001" // Dados de entrada vazios ou inválidos
	ErrDataSource   = "INP_002" // Falha ao ler a fonte de dados

	// Erros de cálculo (CMP)
	ErrComputation = "CMP_001" // Estatística degenerada (ex: divisão por zero)

	// Erros de saída (OUT)
	ErrRender    = "OUT_001" // Falha ao renderizar o gráfico
	ErrFileWrite = "OUT_002" // Falha ao gravar CSV/PNG/JSON
	ErrDisplay   = "OUT_003" // Falha no modo de visualização interativa

	// Erros da aplicação (APP)
	ErrConfig   = "APP_001" // Configuração inválida
	ErrInternal = "APP_002" // Erro não mapeado
)

// Status de saída do processo
const (
	StatusOK          = 0
	StatusInternal    = 1
	StatusInvalidData = 2
	StatusComputation = 3
	StatusFileWrite   = 4
	StatusRender      = 5
	StatusDataSource  = 6
	StatusConfig      = 7
	StatusDisplay     = 8
)

// Mapeamento de códigos de erro para status de saída
var exitStatusMap = map[string]int{
	ErrInvalidInput: StatusInvalidData,
	ErrDataSource:   StatusDataSource,
	ErrComputation:  StatusComputation,
	ErrRender:       StatusRender,
	ErrFileWrite:    StatusFileWrite,
	ErrDisplay:      StatusDisplay,
	ErrConfig:       StatusConfig,
	ErrInternal:     StatusInternal,
}

// Coder é implementado por erros que carregam um código de erro
type Coder interface {
	error
	ErrorCode() string
}

// StatusFor retorna o status de saída de um código, ou StatusInternal se desconhecido
func StatusFor(code string) int {
	status, exists := exitStatusMap[code]
	if !exists {
		return StatusInternal
	}
	return status
}

// FromError resolve o status de saída de um erro qualquer
func FromError(err error) int {
	if err == nil {
		return StatusOK
	}

	var coder Coder
	if errors.As(err, &coder) {
		return StatusFor(coder.ErrorCode())
	}

	return StatusInternal
}

// Report escreve a mensagem padronizada de erro e retorna o status de saída
func Report(w io.Writer, err error) int {
	if err == nil {
		return StatusOK
	}

	fmt.Fprintln(w, "Error:", err)
	return FromError(err)
}
