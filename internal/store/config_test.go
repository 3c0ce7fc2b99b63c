package store

import (
	"errors"
	"testing"
)

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "all defaults",
			in:   Config{URL: " mysql://u@h/db "},
			want: Config{
				URL: "mysql://u@h/db",
				MySQL: Options{
					MigrationTable:  "_migrations",
					MigrationFile:   "migration_template.sql",
					NameFieldLength: 50,
				},
			},
		},
		{
			name: "overrides kept",
			in: Config{
				URL: "mysql://u@h/db",
				MySQL: Options{
					MigrationTable:  "history",
					MigrationFile:   "custom.sql",
					NameFieldLength: 128,
					ResetExecution:  true,
					CreateDatabase:  true,
				},
			},
			want: Config{
				URL: "mysql://u@h/db",
				MySQL: Options{
					MigrationTable:  "history",
					MigrationFile:   "custom.sql",
					NameFieldLength: 128,
					ResetExecution:  true,
					CreateDatabase:  true,
				},
			},
		},
		{
			name: "non-positive length falls back",
			in:   Config{URL: "u@tcp(h)/db", MySQL: Options{NameFieldLength: -5}},
			want: Config{
				URL: "u@tcp(h)/db",
				MySQL: Options{
					MigrationTable:  "_migrations",
					MigrationFile:   "migration_template.sql",
					NameFieldLength: 50,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (Config{URL: "mysql://u@h/db"}).Validate(); err != nil {
		t.Errorf("Validate() with url error = %v", err)
	}
	if err := (Config{}).Validate(); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Validate() without url error = %v, want ErrConfiguration", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]interface{}{
		"url": "mysql://app:pw@db:3306/shop",
		"mysql": map[string]interface{}{
			"migrationTable":    "deploys",
			"migrationFile":     "deploy.sql",
			"nameFieldLength":   100,
			"resetExecution":    true,
			"createDbOnConnect": true,
		},
		"ignored": "extra keys are fine",
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if cfg.URL != "mysql://app:pw@db:3306/shop" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.MySQL.MigrationTable != "deploys" {
		t.Errorf("MigrationTable = %q, want deploys", cfg.MySQL.MigrationTable)
	}
	if cfg.MySQL.MigrationFile != "deploy.sql" {
		t.Errorf("MigrationFile = %q, want deploy.sql", cfg.MySQL.MigrationFile)
	}
	if cfg.MySQL.NameFieldLength != 100 {
		t.Errorf("NameFieldLength = %d, want 100", cfg.MySQL.NameFieldLength)
	}
	if !cfg.MySQL.ResetExecution || !cfg.MySQL.CreateDatabase {
		t.Error("boolean overrides were not decoded")
	}
}

func TestFromMap_DefaultsAndErrors(t *testing.T) {
	cfg, err := FromMap(map[string]interface{}{"url": "mysql://u@h/db"})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if cfg.MySQL.MigrationTable != "_migrations" || cfg.MySQL.NameFieldLength != 50 {
		t.Errorf("defaults not applied: %+v", cfg.MySQL)
	}

	if _, err := FromMap(map[string]interface{}{}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("FromMap() without url error = %v, want ErrConfiguration", err)
	}
	if _, err := FromMap(map[string]interface{}{"url": 42}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("FromMap() with non-string url error = %v, want ErrConfiguration", err)
	}
}
