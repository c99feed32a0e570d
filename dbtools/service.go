package dbtools

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inference-gateway/groq-mcp-client/logger"
)

// TableSchema is the payload of get_table_schema
type TableSchema struct {
	TableName   string   `json:"table_name"`
	Columns     []Column `json:"columns"`
	PrimaryKeys []string `json:"primary_keys"`
}

// TableInfo is one table of describe_database
type TableInfo struct {
	Name     string   `json:"name"`
	RowCount int64    `json:"row_count"`
	Columns  []Column `json:"columns"`
}

// DatabaseInfo is the payload of describe_database
type DatabaseInfo struct {
	DatabaseName string      `json:"database_name"`
	DatabaseType string      `json:"database_type"`
	Tables       []TableInfo `json:"tables"`
}

// Service implements the database tools. Every method answers with JSON
// text, failures are encoded as {"error": "..."}.
type Service struct {
	db           *sql.DB
	dialect      Dialect
	databaseName string
	timeout      time.Duration
	logger       logger.Logger
}

func NewService(db *sql.DB, dialect Dialect, databaseName string, logger logger.Logger) *Service {
	return &Service{
		db:           db,
		dialect:      dialect,
		databaseName: databaseName,
		timeout:      30 * time.Second,
		logger:       logger,
	}
}

func (s *Service) ListTables(ctx context.Context) string {
	s.logger.Debug("Handling list_tables tool")
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tables, err := s.dialect.ListTables(ctx, s.db)
	if err != nil {
		return s.failure("Error listing tables", err)
	}
	s.logger.Debug("Found tables", "count", len(tables))
	return encode(tables)
}

func (s *Service) GetTableSchema(ctx context.Context, table string) string {
	s.logger.Debug("Handling get_table_schema tool", "table", table)
	if strings.TrimSpace(table) == "" {
		return s.failure("Error getting table schema", errors.New("table_name is required"))
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	columns, err := s.dialect.Columns(ctx, s.db, table)
	if err != nil {
		return s.failure("Error getting table schema", err, "table", table)
	}
	primaryKeys, err := s.dialect.PrimaryKeys(ctx, s.db, table)
	if err != nil {
		return s.failure("Error getting table schema", err, "table", table)
	}

	return encode(TableSchema{
		TableName:   table,
		Columns:     columns,
		PrimaryKeys: primaryKeys,
	})
}

// ExecuteQuery runs caller supplied SQL inside a read-only transaction
func (s *Service) ExecuteQuery(ctx context.Context, query string) string {
	s.logger.Debug("Handling execute_query tool", "sql", query)
	if strings.TrimSpace(query) == "" {
		return s.failure("Error executing query", errors.New("sql is required"))
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var results []map[string]interface{}
	err := s.dialect.ReadOnly(ctx, s.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		results, err = scanRows(rows)
		return err
	})
	if err != nil {
		return s.failure("Error executing query", err)
	}

	s.logger.Debug("Query returned rows", "count", len(results))
	return encode(results)
}

func (s *Service) DescribeDatabase(ctx context.Context) string {
	s.logger.Debug("Handling describe_database tool")
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tables, err := s.dialect.ListTables(ctx, s.db)
	if err != nil {
		return s.failure("Error describing database", err)
	}

	info := DatabaseInfo{
		DatabaseName: s.databaseName,
		DatabaseType: s.dialect.DriverName(),
		Tables:       make([]TableInfo, 0, len(tables)),
	}
	for _, table := range tables {
		var rowCount int64
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&rowCount); err != nil {
			return s.failure("Error describing database", err, "table", table)
		}
		columns, err := s.dialect.Columns(ctx, s.db, table)
		if err != nil {
			return s.failure("Error describing database", err, "table", table)
		}
		info.Tables = append(info.Tables, TableInfo{
			Name:     table,
			RowCount: rowCount,
			Columns:  columns,
		})
	}

	return encode(info)
}

func (s *Service) failure(message string, err error, fields ...interface{}) string {
	s.logger.Error(message, err, fields...)
	return encodeError(err)
}

func scanRows(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []map[string]interface{}{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			row[column] = jsonValue(values[i])
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// jsonValue keeps JSON native scalars and stringifies everything else
func jsonValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil, bool, string, int64, int32, int, float64, float32:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}

func encode(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return encodeError(err)
	}
	return string(data)
}

func encodeError(err error) string {
	data, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(data)
}
