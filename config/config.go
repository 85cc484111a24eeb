package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"piwkina-shop/models"
	"piwkina-shop/store"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

type Config struct {
	Port             string
	GinMode          string
	LogLevel         string
	JWTSecret        []byte
	StoreDriver      string
	DatabaseURL      string
	LocalStoragePath string
	AdminEmail       string
	AdminPassword    string
	CORSOrigins      []string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment, after loading .env when one
// exists.
func Load() Config {
	_ = godotenv.Load()

	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          os.Getenv("GIN_MODE"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		JWTSecret:        []byte(getEnv("JWT_SECRET", "piwkina_super_secret_2024")),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		DatabaseURL:      getEnv("DATABASE_URL", "piwkina.db"),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "piwkina-local.db"),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@piwkina.ge"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:      origins,
	}
}

// InitLogger configures the global zerolog logger. Release mode logs JSON;
// anything else gets the console writer.
func InitLogger(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.GinMode != "release" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// InitDB opens the database for the configured driver and migrates it. The
// memory driver still needs SQL for accounts, so it gets an in-memory sqlite.
func InitDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseURL)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case DriverMySQL:
		dialector = mysql.Open(cfg.DatabaseURL)
	case DriverMemory:
		dialector = sqlite.Open("file::memory:?cache=shared")
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s database: %w", cfg.StoreDriver, err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate users: %w", err)
	}
	if cfg.StoreDriver != DriverMemory {
		if err := store.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate collections: %w", err)
		}
	}
	log.Info().Str("driver", cfg.StoreDriver).Msg("database connected and migrated")
	return db, nil
}

// NewBackend returns the collection backend for the configured driver.
func NewBackend(cfg Config, db *gorm.DB) store.Backend {
	if cfg.StoreDriver == DriverMemory {
		return store.NewMemoryBackend()
	}
	return store.NewGormBackend(db)
}
