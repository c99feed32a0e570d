package dbtools

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/inference-gateway/groq-mcp-client/config"
)

// Column describes one column of a table
type Column struct {
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	IsNullable string `json:"is_nullable"`
}

// Dialect hides the catalog queries and the read-only mechanics that differ
// between database engines.
type Dialect interface {
	// DriverName is the database/sql driver the dialect is used with
	DriverName() string
	ListTables(ctx context.Context, db *sql.DB) ([]string, error)
	Columns(ctx context.Context, db *sql.DB, table string) ([]Column, error)
	PrimaryKeys(ctx context.Context, db *sql.DB, table string) ([]string, error)
	// ReadOnly runs fn in a transaction that rejects writes. The transaction
	// is always rolled back.
	ReadOnly(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error
}

// DialectFor returns the dialect of a configured driver
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DatabaseDriverPostgres:
		return Postgres{}, nil
	case config.DatabaseDriverSQLite:
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the configured database and verifies the connection
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, nil, err
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, dialect, nil
}

// quoteIdent quotes an identifier for both supported engines
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func queryStrings(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

// Postgres reads the public schema through information_schema
type Postgres struct{}

func (Postgres) DriverName() string { return "pgx" }

func (Postgres) ListTables(ctx context.Context, db *sql.DB) ([]string, error) {
	return queryStrings(ctx, db, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`)
}

func (Postgres) Columns(ctx context.Context, db *sql.DB, table string) ([]Column, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := []Column{}
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.ColumnName, &c.DataType, &c.IsNullable); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (Postgres) PrimaryKeys(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	return queryStrings(ctx, db, `
		SELECT c.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.constraint_column_usage AS ccu USING (constraint_schema, constraint_name)
		JOIN information_schema.columns AS c
		  ON c.table_schema = tc.constraint_schema AND c.table_name = tc.table_name AND c.column_name = ccu.column_name
		WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = 'public' AND tc.table_name = $1`, table)
}

func (Postgres) ReadOnly(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	return fn(tx)
}

// SQLite reads sqlite_master and the table_info pragma
type SQLite struct{}

func (SQLite) DriverName() string { return "sqlite" }

func (SQLite) ListTables(ctx context.Context, db *sql.DB) ([]string, error) {
	return queryStrings(ctx, db, `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
}

func (SQLite) Columns(ctx context.Context, db *sql.DB, table string) ([]Column, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, type, "notnull" FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := []Column{}
	for rows.Next() {
		var (
			c       Column
			notNull bool
		)
		if err := rows.Scan(&c.ColumnName, &c.DataType, &notNull); err != nil {
			return nil, err
		}
		c.IsNullable = "YES"
		if notNull {
			c.IsNullable = "NO"
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (SQLite) PrimaryKeys(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	return queryStrings(ctx, db, `SELECT name FROM pragma_table_info(?) WHERE pk > 0 ORDER BY pk`, table)
}

// ReadOnly pins one connection and switches it to query_only for the
// duration of fn.
func (SQLite) ReadOnly(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return err
	}
	defer func() { _, _ = conn.ExecContext(context.Background(), "PRAGMA query_only = OFF") }()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	return fn(tx)
}
