// Package mysqlstore is a migration storage backend for MySQL-family
// databases (MySQL, MariaDB, Percona). A migration-runner host drives it
// through the Backend surface: Connect, BeforeMigration, the executed-name
// operations per migration, then Disconnect. The adapter only keeps the
// bookkeeping; discovering, ordering and executing migrations is the host's
// job.
package mysqlstore

import (
	"github.com/migrun/mysqlstore/internal/common"
	"github.com/migrun/mysqlstore/internal/constants"
	"github.com/migrun/mysqlstore/internal/store"
)

// Re-export commonly used types for public API

// Config is the full adapter configuration: connection url plus the optional
// nested override block.
type Config = store.Config

// Options are the adapter-specific overrides of the nested block.
type Options = store.Options

// Store is the MySQL-family migration-state store.
type Store = store.Store

// Backend is the storage contract a migration-runner host programs against.
type Backend = store.Backend

// Executor is the query capability data operations run against; *sql.DB
// satisfies it.
type Executor = store.Executor

// Error taxonomy; check with errors.Is.
var (
	ErrConfiguration = store.ErrConfiguration
	ErrParse         = store.ErrParse
	ErrConnection    = store.ErrConnection
	ErrSchema        = store.ErrSchema
	ErrQuery         = store.ErrQuery
)

// Defaults applied by Config normalization.
const (
	DefaultMigrationTable  = constants.DefaultMigrationTable
	DefaultMigrationFile   = constants.DefaultMigrationFile
	DefaultNameFieldLength = constants.DefaultNameFieldLength
)

// New validates the configuration and returns an unconnected store; call
// Connect on it to dial and bootstrap the tracking table.
func New(cfg Config) (*Store, error) { return store.New(cfg) }

// ConfigFromMap decodes the untyped configuration block a host passes into a
// normalized, validated Config.
func ConfigFromMap(m map[string]interface{}) (Config, error) { return store.FromMap(m) }

// LoadConfig reads an adapter configuration file (yaml, json, or toml).
func LoadConfig(path string) (Config, error) { return store.LoadConfig(path) }

// LogLevel controls logging verbosity.
type LogLevel = common.LogLevel

const (
	LogLevelError = common.LogLevelError
	LogLevelWarn  = common.LogLevelWarn
	LogLevelInfo  = common.LogLevelInfo
	LogLevelDebug = common.LogLevelDebug
)

// Logger is the structured logger used throughout the adapter.
type Logger = common.Logger

// NewLogger creates a text logger at the given level.
func NewLogger(level LogLevel) *Logger { return common.NewLogger(level) }

// NewJSONLogger creates a JSON logger at the given level.
func NewJSONLogger(level LogLevel) *Logger { return common.NewJSONLogger(level) }

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(l *Logger) { common.SetDefaultLogger(l) }
