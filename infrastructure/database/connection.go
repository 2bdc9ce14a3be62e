package database

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Drivers registrados em database/sql
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Conn é a conexão usada pelos repositórios
type Conn interface {
	Queryer
	Driver() string
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

var _ Conn = (*Connection)(nil)

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	driver string,
	dsn string,
) (*Connection, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, errors.Errorf("driver não suportado: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir conexão %s", driver)
	}

	// Um banco sqlite em memória existe apenas dentro de uma conexão
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "erro ao conectar em %s", driver)
	}

	return &Connection{DB: db, driver: driver}, nil
}

// Driver retorna o nome do driver da conexão
func (c *Connection) Driver() string {
	return c.driver
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.DB.QueryRowContext(ctx, query, args...)
}

func (c *Connection) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.DB.ExecContext(ctx, query, args...)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback falhou: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
