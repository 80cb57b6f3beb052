package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"listing-service/internal/constants"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	CatalogBackendMock     = "mock"
	CatalogBackendPostgres = "postgres"
)

type DBconfig struct {
	URL      string
	MaxConns int32
	// SeedFixture - заполнить пустую таблицу демонстрационным набором
	SeedFixture bool
}

type RESTconfig struct {
	Port           string
	AllowedOrigins []string
}

type ContentConfig struct {
	BaseURL string
	APIKey  string
	Plugins []string
}

type CatalogConfig struct {
	Backend        string
	LatencyEnabled bool
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	Content      ContentConfig
	Catalog      CatalogConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из .env (если он есть) и переменных окружения.
// Переменные окружения, уже заданные в процессе, не перетираются значениями из файла.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// Без .env работаем на переменных окружения (Docker, CI)
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found (path: %v), using process environment", envPath)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listing-service")
	cfg.Rest.Port = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.Content.BaseURL = getEnvAsString("CONTENT_BASE_URL", "http://localhost:8282/v0/projects/nexnest-website")
	cfg.Content.APIKey = os.Getenv("CONTENT_API_KEY")
	if cfg.Content.APIKey == "" {
		return nil, fmt.Errorf("CONTENT_API_KEY environment variable is required")
	}
	cfg.Content.Plugins = getEnvAsList("CONTENT_PLUGINS", constants.DefaultContentPlugins)

	cfg.Catalog.Backend = strings.ToLower(getEnvAsString("CATALOG_BACKEND", CatalogBackendMock))
	cfg.Catalog.LatencyEnabled = getEnvAsBool("MOCK_LATENCY_ENABLED", true)

	switch cfg.Catalog.Backend {
	case CatalogBackendMock:
	case CatalogBackendPostgres:
		cfg.Database.URL = os.Getenv("DATABASE_URL")
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for %s catalog", CatalogBackendPostgres)
		}
		cfg.Database.MaxConns = getEnvAsInt32("DATABASE_MAX_CONNS", 0)
		cfg.Database.SeedFixture = getEnvAsBool("DATABASE_SEED_FIXTURE", true)
	default:
		return nil, fmt.Errorf("unknown CATALOG_BACKEND %q (expected %q or %q)", cfg.Catalog.Backend, CatalogBackendMock, CatalogBackendPostgres)
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsInt32 читает переменную окружения как int32; значения вне диапазона заменяются значением по умолчанию
func getEnvAsInt32(key string, defaultValue int32) int32 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.ParseInt(valueStr, 10, 32)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int32: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return int32(valueInt)
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsList читает список через запятую. Пустые элементы отбрасываются.
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
