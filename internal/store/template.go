package store

import (
	"embed"
	"path"
	"path/filepath"
	"runtime"
)

// Bundled migration file templates shipped with the adapter
//
//go:embed templates/*.sql
var templateFS embed.FS

// templateDir is the absolute path of the bundled templates directory,
// resolved from this source file's location so results never depend on the
// working directory.
var templateDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "templates")
}()

// TemplatePath returns the filesystem path of the migration file template the
// host copies when creating a new migration, using the configured
// MigrationFile name. Pure path composition, no I/O.
func (s *Store) TemplatePath() string {
	return filepath.Join(templateDir, s.cfg.MySQL.MigrationFile)
}

// Template returns the bundled template contents for the configured
// MigrationFile name. Useful when the adapter is deployed from a compiled
// binary where the source tree is absent.
func (s *Store) Template() ([]byte, error) {
	return templateFS.ReadFile(path.Join("templates", s.cfg.MySQL.MigrationFile))
}
