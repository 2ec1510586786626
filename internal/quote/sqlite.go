package quote

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go driver
)

const schemaVersion = 2

// timestampLayout is fixed width so submitted_at sorts as text in time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteConfig defines connection parameters.
type SQLiteConfig struct {
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// DefaultSQLiteConfig returns settings suited to a single small writer.
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 4,
	}
}

// SQLiteSink appends quote requests to a quote_requests table.
type SQLiteSink struct {
	DB *sql.DB
}

// OpenSQLiteSink opens (creating if needed) the database at path.
func OpenSQLiteSink(path string, cfg SQLiteConfig) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(path, cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open failed: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}

	s := &SQLiteSink{DB: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("quote store: migration failed: %w", err)
	}

	return s, nil
}

// sqliteDSN builds a file: URI. The path is escaped so ? and # stay part of
// the file name instead of starting the query or fragment.
func sqliteDSN(path string, cfg SQLiteConfig) string {
	pragmas := []string{
		"journal_mode(WAL)",
		fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()),
		"synchronous(NORMAL)",
	}
	query := make(url.Values)
	query["_pragma"] = pragmas

	u := url.URL{
		Scheme:   "file",
		Opaque:   (&url.URL{Path: path}).EscapedPath(),
		RawQuery: query.Encode(),
	}

	return u.String()
}

func (s *SQLiteSink) migrate() error {
	var current int
	if err := s.DB.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return err
	}
	if current >= schemaVersion {
		return nil
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if current < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS quote_requests (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			submitted_at TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			services TEXT NOT NULL,
			project_details TEXT,
			personal_note TEXT,
			timeline TEXT,
			budget TEXT,
			remote_addr TEXT,
			user_agent TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_quote_submitted ON quote_requests(submitted_at);
		`
		if _, err := tx.Exec(schema); err != nil {
			return err
		}
	}
	if current == 1 {
		if err := normalizeTimestamps(tx); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

// normalizeTimestamps rewrites version 1 rows, stored as RFC 3339 with a
// variable-length fraction, into timestampLayout.
func normalizeTimestamps(tx *sql.Tx) error {
	rows, err := tx.Query(`SELECT id, submitted_at FROM quote_requests`)
	if err != nil {
		return err
	}

	updates := make(map[string]string)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			_ = rows.Close()
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			_ = rows.Close()
			return fmt.Errorf("quote store: parse submitted_at of %s: %w", id, err)
		}
		updates[id] = t.UTC().Format(timestampLayout)
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for id, ts := range updates {
		if _, err := tx.Exec(`UPDATE quote_requests SET submitted_at = ? WHERE id = ?`, ts, id); err != nil {
			return err
		}
	}

	return nil
}

// Deliver implements Sink.
func (s *SQLiteSink) Deliver(ctx context.Context, req Request) error {
	services, err := json.Marshal(req.Draft.Services)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO quote_requests (id, session_id, submitted_at, name, email, phone, services,
		project_details, personal_note, timeline, budget, remote_addr, user_agent)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.SessionID, req.SubmittedAt.UTC().Format(timestampLayout),
		req.Draft.Name, req.Draft.Email, req.Draft.Phone, string(services),
		req.Draft.ProjectDetails, req.Draft.PersonalNote, req.Draft.Timeline, req.Draft.Budget,
		req.RemoteAddr, req.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("quote store: insert %s: %w", req.ID, err)
	}

	return nil
}

// Recent returns up to limit requests, newest first.
func (s *SQLiteSink) Recent(ctx context.Context, limit int) ([]Request, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, session_id, submitted_at, name, email, phone, services,
		project_details, personal_note, timeline, budget, remote_addr, user_agent
	FROM quote_requests ORDER BY submitted_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Request
	for rows.Next() {
		var (
			req          Request
			submittedAt  string
			services     string
			phone, notes sql.NullString
			details      sql.NullString
			timeline     sql.NullString
			budget       sql.NullString
			addr, agent  sql.NullString
		)
		if err := rows.Scan(&req.ID, &req.SessionID, &submittedAt, &req.Draft.Name, &req.Draft.Email,
			&phone, &services, &details, &notes, &timeline, &budget, &addr, &agent); err != nil {
			return nil, err
		}
		req.SubmittedAt, _ = time.Parse(time.RFC3339Nano, submittedAt)
		if err := json.Unmarshal([]byte(services), &req.Draft.Services); err != nil {
			return nil, fmt.Errorf("quote store: decode services for %s: %w", req.ID, err)
		}
		req.Draft.Phone = phone.String
		req.Draft.ProjectDetails = details.String
		req.Draft.PersonalNote = notes.String
		req.Draft.Timeline = timeline.String
		req.Draft.Budget = budget.String
		req.RemoteAddr = addr.String
		req.UserAgent = agent.String
		out = append(out, req)
	}

	return out, rows.Err()
}

// Close implements Sink.
func (s *SQLiteSink) Close() error {
	return s.DB.Close()
}
