package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	todoentity "todo_backend/internal/feature/todo/domain/entity"
)

// Config holds database connection settings.
type Config struct {
	Driver   string // "mysql" (default) or "postgres"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfig loads database settings from environment variables.
func LoadConfig() Config {
	return Config{
		Driver:   os.Getenv("DB_DRIVER"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN assembles the driver-specific DSN string for the given settings.
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// OpenDB opens the configured database, retrying for up to 60 seconds.
func OpenDB(cfg Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	// DB_DRIVERでドライバを切り替え（デフォルトはMySQL）
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = gpostgres.Open(dsn)
	default:
		dialector = gmysql.Open(dsn)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Todo）
		if err := db.AutoMigrate(
			&authentity.User{},
			&todoentity.Todo{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
