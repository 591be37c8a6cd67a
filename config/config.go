package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Firebase FirebaseConfig
	Admin    AdminConfig
	Backup   BackupConfig
}

type ServerConfig struct {
	Port              string
	CORSOrigins       []string
	ContactRatePerMin int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// StoreConfig selects where the collections live. Source "local" keeps them
// in memory mirrored to Backend; "remote" serves them from Firestore.
type StoreConfig struct {
	Source   string
	Backend  string
	SeedFile string
	// FlushOnShutdown rewrites every mirror before the server exits.
	FlushOnShutdown bool
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SQLiteConfig struct {
	Path string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
}

type AdminConfig struct {
	Auth   string
	APIKey string
}

type BackupConfig struct {
	Cron     string
	Dir      string
	S3Bucket string
	S3Region string
	S3Prefix string
}

const (
	SourceLocal  = "local"
	SourceRemote = "remote"

	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"

	AdminAuthNone     = "none"
	AdminAuthAPIKey   = "apikey"
	AdminAuthFirebase = "firebase"
)

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			CORSOrigins:       getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),
			ContactRatePerMin: getEnvAsInt("CONTACT_RATE_PER_MIN", 5),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Source:   getEnv("PORTFOLIO_SOURCE", SourceLocal),
			Backend:  getEnv("BACKING_STORE", BackendSQLite),
			SeedFile: getEnv("SEED_FILE", ""),

			FlushOnShutdown: getEnvAsBool("FLUSH_ON_SHUTDOWN", true),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "data/portfolio.db"),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Admin: AdminConfig{
			Auth:   getEnv("ADMIN_AUTH", AdminAuthNone),
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
		Backup: BackupConfig{
			Cron:     getEnv("BACKUP_CRON", ""),
			Dir:      getEnv("BACKUP_DIR", "backups"),
			S3Bucket: getEnv("BACKUP_S3_BUCKET", ""),
			S3Region: getEnv("BACKUP_S3_REGION", ""),
			S3Prefix: getEnv("BACKUP_S3_PREFIX", "portfolio/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Source {
	case SourceLocal:
		switch c.Store.Backend {
		case BackendRedis:
			if c.Redis.Addr == "" {
				return fmt.Errorf("REDIS_ADDR is required")
			}
		case BackendPostgres:
			if c.Database.Host == "" {
				return fmt.Errorf("DB_HOST is required")
			}
		case BackendSQLite:
			if c.SQLite.Path == "" {
				return fmt.Errorf("SQLITE_PATH is required")
			}
		default:
			return fmt.Errorf("BACKING_STORE must be one of redis, postgres, sqlite (got %q)", c.Store.Backend)
		}
	case SourceRemote:
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when PORTFOLIO_SOURCE=remote")
		}
	default:
		return fmt.Errorf("PORTFOLIO_SOURCE must be local or remote (got %q)", c.Store.Source)
	}

	switch c.Admin.Auth {
	case AdminAuthNone:
	case AdminAuthAPIKey:
		if c.Admin.APIKey == "" {
			return fmt.Errorf("ADMIN_API_KEY is required when ADMIN_AUTH=apikey")
		}
	case AdminAuthFirebase:
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when ADMIN_AUTH=firebase")
		}
	default:
		return fmt.Errorf("ADMIN_AUTH must be one of none, apikey, firebase (got %q)", c.Admin.Auth)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma separated value, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
