package analyzing

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/internal/domain"
)

// ValidateRecords verifica se a coleção pode ser analisada
func ValidateRecords(records []domain.RetentionRecord) error {
	if len(records) == 0 {
		return errors.Wrap(domain.ErrInvalidInput, "nenhum registro de retenção encontrado")
	}

	for i, record := range records {
		if strings.TrimSpace(record.Quarter) == "" {
			return errors.Wrapf(domain.ErrInvalidInput, "registro %d sem trimestre", i+1)
		}

		rate := record.RetentionRate
		if math.IsNaN(rate) || rate < 0 || rate > 100 {
			return errors.Wrapf(domain.ErrInvalidInput, "taxa de retenção fora do intervalo [0, 100] em %s: %v", record.Quarter, rate)
		}

		if i > 0 && record.SequenceIndex <= records[i-1].SequenceIndex {
			return errors.Wrapf(domain.ErrInvalidInput, "registros fora de ordem: %s (%d) após %s (%d)",
				record.Quarter, record.SequenceIndex, records[i-1].Quarter, records[i-1].SequenceIndex)
		}
	}

	return nil
}
