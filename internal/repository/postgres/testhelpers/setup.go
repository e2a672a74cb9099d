package testhelpers

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/airport-tracker/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const connectAttempts = 3

// TestDB - соединение с тестовой базой (TEST_DB_*, по умолчанию airports_test на 5433)
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к тестовой базе и закрывает её по завершении теста.
// Если база недоступна, тест пропускается.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	port, _ := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	cfg := config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "airports_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	var (
		db  *sqlx.DB
		err error
	)
	delay := 200 * time.Millisecond
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if db, err = sqlx.Connect("postgres", cfg.DSN()); err == nil {
			break
		}
		if attempt < connectAttempts {
			t.Logf("Database not ready (attempt %d/%d), waiting %v", attempt, connectAttempts, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	tdb := &TestDB{DB: db, Logger: zap.NewNop()}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close закрывает соединение
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.Close()
	}
}

// Cleanup очищает таблицы; flights ссылается на airports, поэтому одним TRUNCATE
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx, "TRUNCATE TABLE flights, airports RESTART IDENTITY CASCADE")
	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
