package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

const migrationsDir = "sql"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Fatal(format string, v ...interface{})
}

// Migrator применяет встроенные миграции через goose
type Migrator struct {
	db *sql.DB
}

// NewMigrator создаёт мигратор для PostgreSQL
func NewMigrator(db *sql.DB, logger Logger) (*Migrator, error) {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db}, nil
}

// Up применяет все pending миграции
func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Reset откатывает все миграции и применяет их заново.
// Все данные удаляются.
func (m *Migrator) Reset(ctx context.Context) error {
	if err := goose.ResetContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("reset migrations: %w", err)
	}
	return m.Up(ctx)
}

// Version текущая версия схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get db version: %w", err)
	}
	return version, nil
}

// gooseLogger адаптер логгера сервиса к goose.Logger
type gooseLogger struct {
	logger Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal(format, v...)
}
