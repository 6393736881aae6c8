// Команда provision пересоздает схему базы и загружает набор преподавателей.
// Все существующие данные, включая бронирования и заявки, удаляются.
//
//	go run ./cmd/provision -config config.toml -seed data.json
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-TutorService/internal/config"
	"github.com/m04kA/SMC-TutorService/internal/infra/seed"
	"github.com/m04kA/SMC-TutorService/internal/infra/storage/migrations"
	referenceRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/reference"
	scheduleRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/schedule"
	tutorRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/tutor"
	provisionUC "github.com/m04kA/SMC-TutorService/internal/usecase/provision"
	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
	"github.com/m04kA/SMC-TutorService/pkg/txmanager"
)

const provisionTimeout = 2 * time.Minute

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	seedPath := flag.String("seed", "", "path to JSON dataset (embedded dataset if empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	var dataset *seed.Dataset
	if *seedPath != "" {
		dataset, err = seed.Load(*seedPath)
	} else {
		dataset, err = seed.Default()
	}
	if err != nil {
		log.Fatal("Failed to load dataset: %v", err)
	}

	log.Debug("Dataset: weekdays=%d, times=%d, tutors=%d", len(dataset.Weekdays), len(dataset.Times), len(dataset.Tutors))

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	migrator, err := migrations.NewMigrator(db, log)
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}

	wrappedDB := dbmetrics.Wrap(db, nil)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	useCase := provisionUC.NewUseCase(
		migrator,
		referenceRepo.NewRepository(wrappedDB),
		tutorRepo.NewRepository(wrappedDB),
		scheduleRepository,
		txmanager.NewTransactionManager(wrappedDB),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), provisionTimeout)
	defer cancel()

	result, err := useCase.Execute(ctx, dataset)
	if err != nil {
		log.Fatal("Provisioning failed: %v", err)
	}

	// Сверяем число ячеек в базе с набором данных
	cells, err := scheduleRepository.Count(ctx)
	if err != nil {
		log.Fatal("Failed to count schedule cells: %v", err)
	}
	if cells != result.Cells {
		log.Fatal("Schedule cells mismatch: expected=%d, stored=%d", result.Cells, cells)
	}

	version, err := migrator.Version(ctx)
	if err != nil {
		log.Fatal("Failed to read schema version: %v", err)
	}

	log.Info("Provisioning done: schema_version=%d, weekdays=%d, times=%d, goals=%d, tutors=%d, cells=%d",
		version, result.Weekdays, result.Times, result.Goals, result.Tutors, result.Cells)
}
