package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	OpenSky  OpenSkyConfig
	Report   ReportConfig
	Importer ImporterConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

type CacheConfig struct {
	FlightsCacheTTL time.Duration
	MemoryCacheSize int
}

// OpenSkyConfig - параметры клиента OpenSky Network
type OpenSkyConfig struct {
	BaseURL    string
	Username   string
	Password   string
	Timeout    time.Duration
	MaxRetries int
}

// ReportConfig - параметры построения отчёта о рейсах
type ReportConfig struct {
	MaxMockFlights int
	MaxRadiusKm    float64
	MockSeed       int64
	RequestImport  bool
}

type ImporterConfig struct {
	Enabled           bool
	ConsumerGroup     string
	LookbackHours     int
	Interval          time.Duration
	AirportLimit      int
	StreamReadTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен, переменные окружения имеют приоритет
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),

			CORSOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),

			PoolSize:    viper.GetInt("REDIS_POOL_SIZE"),
			DialTimeout: time.Duration(viper.GetInt("REDIS_DIAL_TIMEOUT")) * time.Second,
		},
		Cache: CacheConfig{
			FlightsCacheTTL: time.Duration(viper.GetInt("FLIGHTS_CACHE_TTL")) * time.Second,
			MemoryCacheSize: viper.GetInt("MEMORY_CACHE_SIZE"),
		},
		OpenSky: OpenSkyConfig{
			BaseURL:    viper.GetString("OPENSKY_BASE_URL"),
			Username:   viper.GetString("OPENSKY_USERNAME"),
			Password:   viper.GetString("OPENSKY_PASSWORD"),
			Timeout:    time.Duration(viper.GetInt("OPENSKY_TIMEOUT")) * time.Second,
			MaxRetries: viper.GetInt("OPENSKY_MAX_RETRIES"),
		},
		Report: ReportConfig{
			MaxMockFlights: viper.GetInt("REPORT_MAX_MOCK_FLIGHTS"),
			MaxRadiusKm:    viper.GetFloat64("REPORT_MAX_RADIUS_KM"),
			MockSeed:       viper.GetInt64("REPORT_MOCK_SEED"),
			RequestImport:  viper.GetBool("REPORT_REQUEST_IMPORT"),
		},
		Importer: ImporterConfig{
			Enabled:           viper.GetBool("IMPORTER_ENABLED"),
			ConsumerGroup:     viper.GetString("IMPORTER_CONSUMER_GROUP"),
			LookbackHours:     viper.GetInt("IMPORTER_LOOKBACK_HOURS"),
			Interval:          time.Duration(viper.GetInt("IMPORTER_INTERVAL")) * time.Second,
			AirportLimit:      viper.GetInt("IMPORTER_AIRPORT_LIMIT"),
			StreamReadTimeout: time.Duration(viper.GetInt("IMPORTER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 600)

	viper.SetDefault("REDIS_ENABLED", true)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("REDIS_DIAL_TIMEOUT", 5)

	viper.SetDefault("FLIGHTS_CACHE_TTL", 300)
	viper.SetDefault("MEMORY_CACHE_SIZE", 1024)

	viper.SetDefault("OPENSKY_BASE_URL", "https://opensky-network.org/api")
	viper.SetDefault("OPENSKY_TIMEOUT", 30)
	viper.SetDefault("OPENSKY_MAX_RETRIES", 2)

	viper.SetDefault("REPORT_MAX_MOCK_FLIGHTS", 30)
	viper.SetDefault("REPORT_MAX_RADIUS_KM", 20000)
	viper.SetDefault("REPORT_MOCK_SEED", 0)
	viper.SetDefault("REPORT_REQUEST_IMPORT", true)

	viper.SetDefault("IMPORTER_CONSUMER_GROUP", "flight-import-workers")
	viper.SetDefault("IMPORTER_LOOKBACK_HOURS", 24)
	viper.SetDefault("IMPORTER_INTERVAL", 3600)
	viper.SetDefault("IMPORTER_AIRPORT_LIMIT", 10)
	viper.SetDefault("IMPORTER_STREAM_READ_TIMEOUT", 5000)

	viper.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения в формате key=value для pgx
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
