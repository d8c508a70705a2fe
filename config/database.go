package config

import (
	"StarBoard/models"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects with the configured driver and migrates the schema.
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		slog.Info("Connecting to database", "driver", "sqlite", "path", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		slog.Info("Connecting to database",
			"driver", "postgres", "host", cfg.DBHost, "user", cfg.DBUser,
			"dbname", cfg.DBName, "port", cfg.DBPort, "sslmode", cfg.DBSSLMode)
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.Location.String())
		dialector = postgres.Open(dsn)
	}

	db, err := Open(dialector)
	if err != nil {
		return nil, err
	}
	slog.Info("Successfully connected to database")
	return db, nil
}

// Open opens a gorm connection on an arbitrary dialector and runs AutoMigrate.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Parent{},
		&models.Child{},
		&models.Task{},
		&models.StarLog{},
		&models.Achievement{},
		&models.Session{},
		&models.OtpRequest{},
		&models.TaskTemplate{},
	); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

// OpenTestDatabase returns an isolated in-memory SQLite database named after
// the test, shared by every connection in the pool.
func OpenTestDatabase(name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
