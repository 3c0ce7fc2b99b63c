package store

import (
	"database/sql"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/migrun/mysqlstore/internal/common"
	"github.com/migrun/mysqlstore/internal/store/mysql"
)

// Store tracks which migration names have been executed in a MySQL-family
// database. New builds it unconnected; Connect dials, bootstraps the tracking
// table and retains the live handle, which the store owns exclusively until
// Disconnect. The store issues one statement at a time and keeps no state
// beyond the connection and its configuration.
type Store struct {
	cfg     Config
	dialect *mysql.Dialect
	db      *sql.DB
	exec    Executor
}

// New validates the configuration and returns an unconnected store.
func New(cfg Config) (*Store, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		cfg:     cfg,
		dialect: mysql.NewDialect(),
	}, nil
}

// Config returns the normalized configuration the store runs with.
func (s *Store) Config() Config {
	return s.cfg
}

// Connect establishes the store's connection in three sequential steps:
// optionally create the target database over a transient server connection,
// open the primary connection, and ensure the tracking table exists. The first
// failing step aborts the rest and the live handle is only retained when all
// three succeed. The handle is also returned for any direct use the caller
// needs.
func (s *Store) Connect() (*sql.DB, error) {
	logger := common.GetLogger().WithStore(s.dialect.GetDriverName())

	target, err := s.dialect.ParseURL(s.cfg.URL)
	if err != nil {
		logger.Error("failed to parse connection url", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if s.cfg.MySQL.CreateDatabase {
		if err := s.createDatabase(target); err != nil {
			return nil, err
		}
	}

	db, err := s.dialect.Connect(target.FormatDSN())
	if err != nil {
		logger.Error("failed to open primary connection", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if err := s.ensureTable(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.db = db
	s.exec = db
	logger.Info("MySQL database connection established successfully",
		"table", s.cfg.MySQL.MigrationTable)
	return db, nil
}

// createDatabase issues CREATE DATABASE IF NOT EXISTS over a connection that
// selects no schema. The transient connection is closed on every path.
func (s *Store) createDatabase(target *mysqldriver.Config) error {
	logger := common.GetLogger().WithStore(s.dialect.GetDriverName())

	if target.DBName == "" {
		return fmt.Errorf("%w: connection url has no database name", ErrParse)
	}

	admin, err := s.dialect.Connect(s.dialect.ServerDSN(target))
	if err != nil {
		logger.Error("failed to open server connection for database creation", "error", err)
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer func() { _ = admin.Close() }()

	q := s.dialect.CreateDatabaseStatement(target.DBName)
	logger.Debug("creating database if missing", "database", target.DBName, "sql", q)
	if _, err := admin.Exec(q); err != nil {
		logger.Error("failed to create database", "error", err, "database", target.DBName)
		return fmt.Errorf("%w: failed to create database %s: %w", ErrConnection, target.DBName, err)
	}
	return nil
}

// ensureTable bootstraps the tracking table. Idempotent; never destructive.
func (s *Store) ensureTable(exec Executor) error {
	logger := common.GetLogger().WithStore(s.dialect.GetDriverName()).WithTable(s.cfg.MySQL.MigrationTable)

	q := s.dialect.EnsureTableStatement(s.cfg.MySQL.MigrationTable, s.cfg.MySQL.NameFieldLength)
	logger.Debug("ensuring tracking table", "sql", q)
	if _, err := exec.Exec(q); err != nil {
		logger.Error("failed to ensure tracking table", "error", err)
		return fmt.Errorf("%w: failed to ensure table %s: %w", ErrSchema, s.cfg.MySQL.MigrationTable, err)
	}
	return nil
}

// Disconnect closes the held connection. A close failure is logged at debug
// level and swallowed; the caller always observes success.
func (s *Store) Disconnect() {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		common.GetLogger().WithStore(s.dialect.GetDriverName()).Debug("connection close failed", "error", err)
	}
	s.db = nil
	s.exec = nil
}

// executor guards data operations against use before a successful Connect.
func (s *Store) executor() (Executor, error) {
	if s.exec == nil {
		return nil, fmt.Errorf("%w: store is not connected", ErrConnection)
	}
	return s.exec, nil
}

// ExecutedMigrationNames returns every migration name recorded in the tracking
// table. The slice is empty, never nil, when no rows exist. Row order is
// whatever the server returns; callers must not rely on it.
func (s *Store) ExecutedMigrationNames() ([]string, error) {
	exec, err := s.executor()
	if err != nil {
		return nil, err
	}

	rows, err := exec.Query(s.dialect.SelectNamesStatement(s.cfg.MySQL.MigrationTable))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list executed migrations: %w", ErrQuery, err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: failed to scan migration name: %w", ErrQuery, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating migration names: %w", ErrQuery, err)
	}
	return names, nil
}

// MarkExecuted records that a migration has run. A duplicate name surfaces the
// backend's own primary key violation; the store does not pre-check.
func (s *Store) MarkExecuted(name string) error {
	exec, err := s.executor()
	if err != nil {
		return err
	}

	logger := common.GetLogger().WithStore(s.dialect.GetDriverName()).WithMigration(name)
	logger.Debug("marking migration as executed")

	if _, err := exec.Exec(s.dialect.InsertNameStatement(s.cfg.MySQL.MigrationTable), name); err != nil {
		logger.Error("failed to mark migration as executed", "error", err)
		return fmt.Errorf("%w: failed to mark migration %q as executed: %w", ErrQuery, name, err)
	}
	logger.Info("migration marked as executed")
	return nil
}

// UnmarkExecuted removes a migration record, used on rollback. Matching zero
// rows is success; "was present" and "was absent" are not distinguished.
func (s *Store) UnmarkExecuted(name string) error {
	exec, err := s.executor()
	if err != nil {
		return err
	}

	logger := common.GetLogger().WithStore(s.dialect.GetDriverName()).WithMigration(name)
	logger.Debug("unmarking migration")

	if _, err := exec.Exec(s.dialect.DeleteNameStatement(s.cfg.MySQL.MigrationTable), name); err != nil {
		logger.Error("failed to unmark migration", "error", err)
		return fmt.Errorf("%w: failed to unmark migration %q: %w", ErrQuery, name, err)
	}
	return nil
}

// ResetExecuted clears the whole tracking table in one bulk truncate.
func (s *Store) ResetExecuted() error {
	exec, err := s.executor()
	if err != nil {
		return err
	}

	logger := common.GetLogger().WithStore(s.dialect.GetDriverName()).WithTable(s.cfg.MySQL.MigrationTable)
	logger.Debug("resetting executed migrations")

	if _, err := exec.Exec(s.dialect.TruncateStatement(s.cfg.MySQL.MigrationTable)); err != nil {
		logger.Error("failed to reset executed migrations", "error", err)
		return fmt.Errorf("%w: failed to reset executed migrations: %w", ErrQuery, err)
	}
	logger.Info("executed migrations reset")
	return nil
}

// BeforeMigration runs once before a migration batch. When ResetExecution is
// configured the tracking table is cleared first and the call completes only
// after the reset has finished, propagating its error. Without the flag it is
// a no-op.
func (s *Store) BeforeMigration() error {
	if !s.cfg.MySQL.ResetExecution {
		return nil
	}
	return s.ResetExecuted()
}
