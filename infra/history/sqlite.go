package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/evsight/evsight/core/analysis"
)

// SQLiteStore persists reports to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS reports (
        id TEXT PRIMARY KEY,
        ts INTEGER,
        health_status TEXT,
        report TEXT
    );`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the report to the database.
func (s *SQLiteStore) Append(ctx context.Context, rep analysis.Report) error {
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, ts, health_status, report) VALUES (?, ?, ?, ?)`,
		rep.ID, rep.GeneratedAt.Unix(), rep.Degradation.HealthStatus, string(b))
	return err
}

// Query returns reports matching q ordered by generation time.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]analysis.Report, error) {
	var args []any
	query := `SELECT report FROM reports WHERE 1=1`
	if !q.Start.IsZero() {
		query += ` AND ts >= ?`
		args = append(args, q.Start.Unix())
	}
	if !q.End.IsZero() {
		query += ` AND ts <= ?`
		args = append(args, q.End.Unix())
	}
	if q.HealthStatus != "" {
		query += ` AND health_status = ?`
		args = append(args, q.HealthStatus)
	}
	query += ` ORDER BY ts`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []analysis.Report
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rep analysis.Report
		if err := json.Unmarshal([]byte(data), &rep); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		res = append(res, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
