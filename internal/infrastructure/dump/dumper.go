// Package dump produces database export artifacts for the backup lifecycle.
// The exporter is a strategy keyed by what the environment offers: the native
// mysqldump tool when present, otherwise a textual export through the live
// gorm connection so backups stay usable in constrained environments.
package dump

import (
	"context"
	"os/exec"

	"rentora-backend/internal/config"

	"gorm.io/gorm"
)

type Dumper interface {
	// Dump writes an export artifact to path and returns its size in bytes.
	Dump(ctx context.Context, path string) (int64, error)
}

// New selects the export strategy for the configured engine.
func New(cfg *config.Config, db *gorm.DB) Dumper {
	if _, err := exec.LookPath("mysqldump"); err == nil {
		return &MySQLDumper{cfg: cfg}
	}
	return &GormDumper{db: db}
}
