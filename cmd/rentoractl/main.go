package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rentora-backend/internal/adapter/repository/mysql"
	"rentora-backend/internal/config"
	domainBackup "rentora-backend/internal/domain/backup"
	"rentora-backend/internal/infrastructure/db"
	"rentora-backend/internal/infrastructure/dump"
	backupUC "rentora-backend/internal/usecase/backup"
)

// openUsecase wires the backup stack against the configured database. Done
// lazily per command so `rentoractl backup --help` works without a DB.
func openUsecase() (*backupUC.Usecase, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := gormDB.AutoMigrate(&domainBackup.DatabaseBackup{}); err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return backupUC.NewUsecase(
		mysql.NewBackupRepository(gormDB),
		dump.New(cfg, gormDB),
		cfg.BackupDir,
		time.Duration(cfg.DumpTimeoutSecs)*time.Second,
		logger,
	), nil
}

func printRecord(b *domainBackup.DatabaseBackup) {
	trash := "-"
	if b.TrashedAt != nil {
		trash = b.TrashedAt.Format(time.RFC3339)
	}
	fmt.Printf("%s  %-11s %-9s %10d  %-20s trash=%s\n",
		b.ID, b.Status, b.Type, b.FileSize, b.Filename, trash)
}

func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid backup id %q: %w", arg, err)
	}
	return id, nil
}

func backupCreateCmd() *cobra.Command {
	var scheduled bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run a database export now",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			typ := domainBackup.TypeManual
			var at *time.Time
			if scheduled {
				typ = domainBackup.TypeScheduled
				now := time.Now().UTC()
				at = &now
			}
			rec, err := uc.Create(context.Background(), typ, at)
			if err != nil {
				return err
			}
			printRecord(rec)
			if rec.Status == domainBackup.StatusFailed {
				return fmt.Errorf("export failed: %s", rec.ErrorMessage)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&scheduled, "scheduled", false, "record this run as a scheduled backup")
	return cmd
}

func backupListCmd() *cobra.Command {
	var trash bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backups (active scope by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			var recs []*domainBackup.DatabaseBackup
			if trash {
				recs, err = uc.ListTrashed(context.Background())
			} else {
				recs, err = uc.ListActive(context.Background())
			}
			if err != nil {
				return err
			}
			for _, r := range recs {
				printRecord(r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trash, "trash", false, "list the trash scope instead")
	return cmd
}

func backupTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash <id>",
		Short: "Move a backup to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := uc.SoftDelete(context.Background(), id)
			if err != nil {
				return err
			}
			printRecord(rec)
			return nil
		},
	}
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a backup from the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := uc.Restore(context.Background(), id)
			if err != nil {
				return err
			}
			printRecord(rec)
			return nil
		},
	}
}

func backupDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a backup and its artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := uc.PermanentlyDelete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", id)
			return nil
		},
	}
}

func backupSweepCmd() *cobra.Command {
	var trashDays, deleteDays int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the two-stage retention sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			res, err := uc.RetentionSweep(context.Background(), trashDays, deleteDays)
			if err != nil {
				return err
			}
			fmt.Printf("trashed=%d deleted=%d bytes_freed=%d\n", res.Trashed, res.Deleted, res.BytesFreed)
			return nil
		},
	}
	cfg := config.Load()
	cmd.Flags().IntVar(&trashDays, "trash-days", cfg.TrashAfterDays, "trash active backups older than this many days")
	cmd.Flags().IntVar(&deleteDays, "delete-days", cfg.DeleteAfterDays, "purge trashed backups older than this many days")
	return cmd
}

func backupCleanupCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Hard-delete completed backups older than a cutoff",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := openUsecase()
			if err != nil {
				return err
			}
			res, err := uc.CleanupByAge(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Printf("deleted=%d bytes_freed=%d\n", res.Deleted, res.BytesFreed)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "delete completed backups older than this many days")
	return cmd
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rentoractl",
		Short: "Rentora operations tool",
	}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Database backup lifecycle",
	}
	backupCmd.AddCommand(
		backupCreateCmd(),
		backupListCmd(),
		backupTrashCmd(),
		backupRestoreCmd(),
		backupDeleteCmd(),
		backupSweepCmd(),
		backupCleanupCmd(),
	)
	rootCmd.AddCommand(backupCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
