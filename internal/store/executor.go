package store

import "database/sql"

// Executor is the minimal query capability the data operations run against:
// parameterized execute and select. *sql.DB satisfies it; tests substitute a
// mock without a real server.
type Executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
}

var _ Executor = (*sql.DB)(nil)
