package dump

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"rentora-backend/internal/config"
)

// MySQLDumper shells out to mysqldump. The password travels via MYSQL_PWD so
// it never shows up in the process list.
type MySQLDumper struct {
	cfg *config.Config
}

func (d *MySQLDumper) Dump(ctx context.Context, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cmd := exec.CommandContext(ctx, "mysqldump",
		"--host", d.cfg.MySQLHost,
		"--port", d.cfg.MySQLPort,
		"--user", d.cfg.MySQLUser,
		"--single-transaction",
		"--skip-lock-tables",
		d.cfg.MySQLDB,
	)
	cmd.Env = append(os.Environ(), "MYSQL_PWD="+d.cfg.MySQLPass)
	cmd.Stdout = f

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("mysqldump: %w", err)
	}
	if err := f.Sync(); err != nil {
		return 0, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}
