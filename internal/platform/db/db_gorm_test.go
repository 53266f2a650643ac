package db

import (
	"testing"
)

// TestBuildDSN_MySQL はMySQL接続用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN_MySQL(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "3306",
	}

	dsn := BuildDSN(cfg)

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestBuildDSN_Postgres はPostgres接続用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN_Postgres(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:   "postgres",
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
	}

	dsn := BuildDSN(cfg)

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestLoadConfig は環境変数から設定が読み込まれることを検証します。
func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "n")
	t.Setenv("DB_HOST", "h")
	t.Setenv("DB_PORT", "5432")

	cfg := LoadConfig()

	if cfg.Driver != "postgres" || cfg.User != "u" || cfg.Password != "p" ||
		cfg.Name != "n" || cfg.Host != "h" || cfg.Port != "5432" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
