package storage

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/retention-analysis/internal/domain"
)

// Cabeçalho do CSV de retenção
var csvHeader = []string{"Quarter", "Retention_Rate", "Month_Number"}

// WriteRecordsCSV escreve os registros com o cabeçalho Quarter,Retention_Rate,Month_Number
func WriteRecordsCSV(w io.Writer, records []domain.RetentionRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			record.Quarter,
			strconv.FormatFloat(record.RetentionRate, 'f', -1, 64),
			strconv.Itoa(record.SequenceIndex),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadRecordsCSV lê registros no formato gerado por WriteRecordsCSV.
// Erros de formato são retornados como domain.ErrInvalidInput.
func ReadRecordsCSV(r io.Reader) ([]domain.RetentionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(domain.ErrInvalidInput, "arquivo CSV vazio")
	}
	if err != nil {
		return nil, errors.Wrapf(domain.ErrInvalidInput, "cabeçalho CSV inválido: %v", err)
	}

	for i, column := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")), column) {
			return nil, errors.Wrapf(domain.ErrInvalidInput, "coluna %d deveria ser %s, encontrado %q", i+1, column, header[i])
		}
	}

	records := make([]domain.RetentionRecord, 0, 4)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(domain.ErrInvalidInput, "linha %d: %v", line, err)
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(domain.ErrInvalidInput, "linha %d: Retention_Rate inválido %q", line, row[1])
		}

		index, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, errors.Wrapf(domain.ErrInvalidInput, "linha %d: Month_Number inválido %q", line, row[2])
		}

		records = append(records, domain.RetentionRecord{
			Quarter:       strings.TrimSpace(row[0]),
			RetentionRate: rate,
			SequenceIndex: index,
		})
	}

	return records, nil
}
