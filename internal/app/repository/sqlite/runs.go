package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"memomaker/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    file_name     TEXT NOT NULL,
    file_path     TEXT NOT NULL,
    size_bytes    INTEGER NOT NULL,
    method        TEXT NOT NULL,
    provider      TEXT NOT NULL,
    state         TEXT NOT NULL,
    input_tokens  INTEGER NOT NULL DEFAULT 0,
    output_tokens INTEGER NOT NULL DEFAULT 0,
    total_tokens  INTEGER NOT NULL DEFAULT 0,
    elapsed_ms    INTEGER NOT NULL DEFAULT 0,
    error_message TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMP NOT NULL
);`

// RunDB is the sqlite-backed run history store.
type RunDB struct {
	db *sql.DB
}

// NewRunDB opens (or creates) the history database at dbFilePath.
func NewRunDB(dbFilePath string) (*RunDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbFilePath, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &RunDB{db: db}, nil
}

// NewRunDBWithConn wraps an existing connection. Schema management is the
// caller's responsibility; used by unit tests with sqlmock.
func NewRunDBWithConn(db *sql.DB) *RunDB {
	return &RunDB{db: db}
}

func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

func (rdb *RunDB) RecordRun(rec *model.RunRecord) error {
	insertSQL := `INSERT INTO runs (id, file_name, file_path, size_bytes, method, provider, state, input_tokens, output_tokens, total_tokens, elapsed_ms, error_message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := rdb.db.Exec(insertSQL,
		rec.ID, rec.FileName, rec.FilePath, rec.SizeBytes, rec.Method, rec.Provider,
		string(rec.State), rec.InputTokens, rec.OutputTokens, rec.TotalTokens,
		rec.ElapsedMs, rec.ErrorMessage, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run record: %w", err)
	}
	return nil
}

func (rdb *RunDB) GetRecent(limit int) ([]model.RunRecord, error) {
	sqlStr := `
		SELECT id, file_name, file_path, size_bytes, method, provider, state,
		       input_tokens, output_tokens, total_tokens, elapsed_ms, error_message, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?;`
	rows, err := rdb.db.Query(sqlStr, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func (rdb *RunDB) GetAll() ([]model.RunRecord, error) {
	sqlStr := `
		SELECT id, file_name, file_path, size_bytes, method, provider, state,
		       input_tokens, output_tokens, total_tokens, elapsed_ms, error_message, created_at
		FROM runs
		ORDER BY created_at DESC;`
	rows, err := rdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]model.RunRecord, error) {
	records := make([]model.RunRecord, 0)
	for rows.Next() {
		var rec model.RunRecord
		var state string
		err := rows.Scan(&rec.ID, &rec.FileName, &rec.FilePath, &rec.SizeBytes,
			&rec.Method, &rec.Provider, &state,
			&rec.InputTokens, &rec.OutputTokens, &rec.TotalTokens,
			&rec.ElapsedMs, &rec.ErrorMessage, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		rec.State = model.RunState(state)
		records = append(records, rec)
	}
	return records, rows.Err()
}
