package store

import "database/sql"

// Backend is the storage contract a migration-runner host drives. The host
// calls Connect once, BeforeMigration ahead of each batch, the name operations
// per migration, and Disconnect when the batch is done.
type Backend interface {
	Connect() (*sql.DB, error)
	Disconnect()
	BeforeMigration() error
	ExecutedMigrationNames() ([]string, error)
	MarkExecuted(name string) error
	UnmarkExecuted(name string) error
	TemplatePath() string
}

var _ Backend = (*Store)(nil)
