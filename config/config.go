package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"grubdash-api/models"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port    string `env:"PORT" env-default:"8080"`
	GinMode string `env:"GIN_MODE" env-default:"debug"`
	Log     struct {
		Level  string `env:"LOG_LEVEL" env-default:"info"`
		Format string `env:"LOG_FORMAT" env-default:"text"`
	}
	Store struct {
		Driver string `env:"STORE_DRIVER" env-default:"memory"`
		DSN    string `env:"SQLITE_DSN" env-default:"file:grubdash?mode=memory&cache=shared"`
	}
	Seed bool `env:"SEED_DATA" env-default:"true"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	switch cfg.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.Store.Driver, DriverMemory, DriverSQLite)
	}
	return &cfg, nil
}

// NewLogger builds the process logger from the log settings
func NewLogger(cfg *Config) (*log.Logger, error) {
	logger := log.New()
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Log.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", cfg.Log.Format)
	}
	return logger, nil
}

// OpenDB opens the sqlite database and migrates the resource tables
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// sqlite has a single writer; one connection also keeps a shared
	// in-memory database alive for the life of the pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Dish{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
