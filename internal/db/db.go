// Package db loads the initial workspace catalog. The catalog is an
// in-memory SQLite database seeded by embedded goose migrations; nothing
// is ever written to disk.
package db

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
	log *zap.Logger
}

// memoryDSN opens a private in-memory database
const memoryDSN = "file::memory:?_foreign_keys=ON"

// Open creates the in-memory catalog and applies the seed migrations.
// A nil logger is treated as a no-op logger.
func Open(log *zap.Logger) (*DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("db")

	sqlDB, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so the pool is
	// pinned to one connection that never expires.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB, log: log}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug("catalog ready")
	return db, nil
}

// gooseLogger routes goose output through zap so it never reaches the terminal
type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) { l.s.Debugf(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.s.Fatalf(format, v...) }

// migrate runs the embedded schema and seed migrations
func (db *DB) migrate() error {
	goose.SetLogger(gooseLogger{s: db.log.Named("goose").Sugar()})
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Version returns the applied migration version
func (db *DB) Version() (int64, error) {
	v, err := goose.GetDBVersion(db.DB)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog version: %w", err)
	}
	return v, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Transaction executes a function within a transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
