package constants

import "time"

// Database Constants
const (
	// MySQL defaults
	DefaultMySQLPort     = 3306
	DefaultMySQLProtocol = "tcp"

	// Connection pool settings
	DefaultMySQLMaxConnections = 25
	DefaultMySQLMaxIdleConns   = 5

	// Tracking table defaults
	DefaultMigrationTable  = "_migrations"
	DefaultNameFieldLength = 50

	// Bundled migration file template
	DefaultMigrationFile = "migration_template.sql"
)

// Time and Duration Constants
const (
	// Connection pool lifetimes
	DefaultMaxConnLifetime = 5 * time.Minute
	DefaultMaxIdleTime     = 1 * time.Minute
)
