// Package journal persists raised failure reports to a local sqlite
// database so that outer handlers can inspect failures after the fact.
package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/verist/errkit/errchain"
	"codeberg.org/verist/errkit/logger"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Msgf("Initializing failure journal at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errchain.Wrap(ErrStorageInit, "failed to create journal directory", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errchain.Wrap(ErrStorageInit, "failed to open journal database", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS reports (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp INTEGER NOT NULL,
            code TEXT NOT NULL,
            message TEXT,
            rendered TEXT NOT NULL,
            depth INTEGER NOT NULL
        )
    `)
	if err != nil {
		return errchain.Wrap(ErrStorageInit, "failed to initialize journal schema", err)
	}

	return nil
}

func (r *sqliteRepository) Store(ctx context.Context, report *Report) error {
	if report == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO reports (timestamp, code, message, rendered, depth)
        VALUES (?, ?, ?, ?, ?)
    `,
		report.Timestamp.Unix(),
		string(report.Code),
		report.Message,
		report.Rendered,
		report.Depth,
	)
	if err != nil {
		return errchain.Wrap(ErrStorageAccess, "failed to store report", err)
	}

	return nil
}

func (r *sqliteRepository) Recent(ctx context.Context, limit int) ([]Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.QueryContext(ctx, `
        SELECT timestamp, code, message, rendered, depth
        FROM reports
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, errchain.Wrap(ErrStorageRead, "failed to query reports", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var (
			report Report
			ts     int64
			code   string
		)
		if err := rows.Scan(&ts, &code, &report.Message, &report.Rendered, &report.Depth); err != nil {
			return nil, errchain.Wrap(ErrStorageRead, "failed to scan report", err)
		}
		report.Timestamp = unixTime(ts)
		report.Code = errchain.Code(code)
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, errchain.Wrap(ErrStorageRead, "failed to read reports", err)
	}

	return reports, nil
}

func unixTime(ts int64) time.Time {
	return time.Unix(ts, 0)
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errchain.Wrap(ErrStorageClose, "failed to close journal database", err)
	}
	return nil
}
