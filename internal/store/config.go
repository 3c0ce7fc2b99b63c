package store

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/migrun/mysqlstore/internal/constants"
	"github.com/migrun/mysqlstore/internal/util"
)

// Options are the adapter-specific overrides a host may pass in its nested
// configuration block. The key names are the host-facing contract.
type Options struct {
	// MigrationTable is the tracking table name.
	MigrationTable string `mapstructure:"migrationTable" yaml:"migrationTable"`
	// MigrationFile is the bundled migration template filename.
	MigrationFile string `mapstructure:"migrationFile" yaml:"migrationFile"`
	// NameFieldLength is the VARCHAR length of the name column.
	NameFieldLength int `mapstructure:"nameFieldLength" yaml:"nameFieldLength"`
	// ResetExecution clears the tracking table before each migration batch.
	ResetExecution bool `mapstructure:"resetExecution" yaml:"resetExecution"`
	// CreateDatabase creates the target database on connect if it is missing.
	CreateDatabase bool `mapstructure:"createDbOnConnect" yaml:"createDbOnConnect"`
}

// Config is the full adapter configuration: the connection url plus the
// optional nested override block.
type Config struct {
	URL   string  `mapstructure:"url" yaml:"url"`
	MySQL Options `mapstructure:"mysql" yaml:"mysql"`
}

// Normalize returns a copy of the configuration with whitespace trimmed and
// documented defaults applied. This is the single merge step; no field is
// defaulted anywhere else.
func (c Config) Normalize() Config {
	c.URL = strings.TrimSpace(c.URL)
	c.MySQL.MigrationTable = util.TrimWithDefault(c.MySQL.MigrationTable, constants.DefaultMigrationTable)
	c.MySQL.MigrationFile = util.TrimWithDefault(c.MySQL.MigrationFile, constants.DefaultMigrationFile)
	if c.MySQL.NameFieldLength <= 0 {
		c.MySQL.NameFieldLength = constants.DefaultNameFieldLength
	}
	return c
}

// Validate checks the presence of required parameters.
func (c Config) Validate() error {
	if _, ok := util.TrimEmptyCheck(c.URL); !ok {
		return fmt.Errorf("%w: connection url is required", ErrConfiguration)
	}
	return nil
}

// FromMap decodes the untyped configuration block a host passes into a
// normalized, validated Config. Keys are matched case-insensitively; unknown
// keys are ignored.
func FromMap(m map[string]interface{}) (Config, error) {
	var cfg Config
	if err := mapstructure.Decode(m, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
