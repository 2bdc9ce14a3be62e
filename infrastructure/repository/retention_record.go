// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retention-analysis/infrastructure/database"
	"github.com/vfg2006/retention-analysis/internal/domain"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type RetentionRecordRepository interface {
	ListByYear(ctx context.Context, year int) ([]domain.RetentionRecord, error)
	EnsureSchema(ctx context.Context) error
	ReplaceYear(ctx context.Context, year int, records []domain.RetentionRecord) error
}

type retentionRecordRepository struct {
	conn        database.Conn
	table       string
	placeholder squirrel.PlaceholderFormat
}

func NewRetentionRecordRepository(conn database.Conn, table string) (RetentionRecordRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("nome de tabela inválido: %q", table)
	}

	// lib/pq usa $1, $2...; sqlite aceita ?
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if conn.Driver() == database.DriverPostgres {
		placeholder = squirrel.Dollar
	}

	return &retentionRecordRepository{
		conn:        conn,
		table:       table,
		placeholder: placeholder,
	}, nil
}

func (r *retentionRecordRepository) ListByYear(ctx context.Context, year int) ([]domain.RetentionRecord, error) {
	query, args, err := squirrel.
		Select("quarter", "retention_rate", "month_number").
		From(r.table).
		Where(squirrel.Eq{"year": year}).
		OrderBy("month_number ASC").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RetentionRecord, 0, 4)
	for rows.Next() {
		var record domain.RetentionRecord
		if err := rows.Scan(&record.Quarter, &record.RetentionRate, &record.SequenceIndex); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de retenção: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *retentionRecordRepository) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	year INTEGER NOT NULL,
	quarter TEXT NOT NULL,
	retention_rate DOUBLE PRECISION NOT NULL,
	month_number INTEGER NOT NULL,
	PRIMARY KEY (year, month_number)
)`, r.table)

	if _, err := r.conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", r.table, err)
	}
	return nil
}

// ReplaceYear substitui todos os registros do ano em uma única transação
func (r *retentionRecordRepository) ReplaceYear(ctx context.Context, year int, records []domain.RetentionRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Delete(r.table).
			Where(squirrel.Eq{"year": year}).
			PlaceholderFormat(r.placeholder).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover registros de %d: %w", year, err)
		}

		if len(records) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(r.table).
			Columns("year", "quarter", "retention_rate", "month_number").
			PlaceholderFormat(r.placeholder)
		for _, record := range records {
			insert = insert.Values(year, record.Quarter, record.RetentionRate, record.SequenceIndex)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir registros de %d: %w", year, err)
		}

		return nil
	})
}
