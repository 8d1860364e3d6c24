package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/finance-tracker/internal/config"
)

// Storage owns the single SQLite handle. Reads go through Read, every
// write goes through a Writer obtained from Write.
type Storage struct {
	DB     *sql.DB
	exec   bob.DB
	reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	if dir := filepath.Dir(env.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dataSourceName(env.DatabasePath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite allows one writer; a single connection keeps transactions
	// from contending with each other for the file lock.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	exec := bob.NewDB(db)
	return &Storage{
		DB:     db,
		exec:   exec,
		reader: NewReader(exec),
	}, nil
}

func dataSourceName(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Read returns a Reader that runs outside of any transaction.
func (s *Storage) Read() *Reader {
	return s.reader
}

// Write opens a transaction. The caller must Commit or Rollback it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
