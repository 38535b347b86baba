package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "rentora-backend/internal/adapter/http"
	idemp "rentora-backend/internal/adapter/middleware"
	"rentora-backend/internal/adapter/repository/mysql"
	"rentora-backend/internal/config"
	"rentora-backend/internal/domain/backup"
	"rentora-backend/internal/domain/client"
	"rentora-backend/internal/domain/property"
	"rentora-backend/internal/domain/rental"
	"rentora-backend/internal/infrastructure/cache"
	"rentora-backend/internal/infrastructure/db"
	"rentora-backend/internal/infrastructure/dump"
	backupUC "rentora-backend/internal/usecase/backup"
	clientUC "rentora-backend/internal/usecase/client"
	propertyUC "rentora-backend/internal/usecase/property"
	rentalUC "rentora-backend/internal/usecase/rental"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&client.Client{}, &property.Property{}, &rental.Rental{}, &backup.DatabaseBackup{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	uow := mysql.NewGormUoW(gormDB)
	rentals := rentalUC.NewUsecase(uow)
	properties := propertyUC.NewUsecase(uow)
	clients := clientUC.NewUsecase(uow)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	backups := backupUC.NewUsecase(
		mysql.NewBackupRepository(gormDB),
		dump.New(cfg, gormDB),
		cfg.BackupDir,
		time.Duration(cfg.DumpTimeoutSecs)*time.Second,
		logger,
	)

	h := httpadp.NewHandler()
	rentalH := httpadp.NewRentalHandler(rentals)
	propertyH := httpadp.NewPropertyHandler(properties)
	clientH := httpadp.NewClientHandler(clients)
	backupH := httpadp.NewBackupHandler(backups)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// The idempotency guard needs Redis; the API still serves without it.
	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB); err != nil {
		log.Printf("redis unavailable, idempotency guard disabled: %v", err)
	} else {
		e.Use(idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)

	e.POST("/rentals", rentalH.CreateRental)
	e.GET("/rentals", rentalH.ListRentals)
	e.GET("/rentals/:rental_id", rentalH.GetRental)
	e.PATCH("/rentals/:rental_id", rentalH.UpdateRental)
	e.DELETE("/rentals/:rental_id", rentalH.DeleteRental)
	e.POST("/rentals/:rental_id/activate", rentalH.Activate)
	e.POST("/rentals/:rental_id/terminate", rentalH.Terminate)
	e.POST("/rentals/:rental_id/expire", rentalH.MarkExpired)
	e.POST("/rentals/:rental_id/end", rentalH.End)
	e.POST("/rentals/:rental_id/renew", rentalH.Renew)

	e.POST("/properties", propertyH.CreateProperty)
	e.GET("/properties/:property_id", propertyH.GetProperty)
	e.POST("/properties/:property_id/sync-status", propertyH.SyncStatus)
	e.PATCH("/properties/:property_id/rate", propertyH.UpdateRate)
	e.DELETE("/properties/:property_id", propertyH.DeleteProperty)
	e.GET("/properties/:property_id/rentals", propertyH.ListRentals)

	e.POST("/clients", clientH.CreateClient)
	e.GET("/clients/:client_id", clientH.GetClient)

	e.POST("/backups", backupH.CreateBackup)
	e.GET("/backups", backupH.ListBackups)
	e.DELETE("/backups/:id", backupH.TrashBackup)
	e.POST("/backups/:id/restore", backupH.RestoreBackup)
	e.DELETE("/backups/:id/permanent", backupH.PermanentlyDeleteBackup)
	e.POST("/backups/sweep", backupH.Sweep)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
