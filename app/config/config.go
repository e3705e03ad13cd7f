package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	_ "github.com/lib/pq"
)

// Config is the application configuration, loaded from a TOML file with
// environment-variable overrides.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Storage  StorageConfig  `toml:"storage"`

	DB *sql.DB `toml:"-"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// StorageConfig selects where document payloads live. This is a tagged
// union: Type determines which other fields apply.
type StorageConfig struct {
	Type string `toml:"type"` // "inline", "filesystem", "memory" or "s3"

	// Filesystem-specific.
	Root string `toml:"root,omitempty"`

	// S3-specific.
	Bucket    string `toml:"bucket,omitempty"`
	Prefix    string `toml:"prefix,omitempty"`
	Region    string `toml:"region,omitempty"`
	AccessKey string `toml:"access_key,omitempty"`
	SecretKey string `toml:"secret_key,omitempty"`
}

var AppConfig *Config

// Load reads the TOML config at path and applies environment overrides.
// A missing file is not an error; defaults plus environment variables are
// enough to run.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{URL: "postgres://postgres@localhost:5432/policypal?sslmode=disable"},
		Storage:  StorageConfig{Type: "inline"},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
			log.Printf("Config file %s not found, using defaults", path)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "inline"
	}

	return cfg, nil
}

// ConfigPath returns the config file location, honouring POLICYPAL_CONFIG.
func ConfigPath() string {
	if v := os.Getenv("POLICYPAL_CONFIG"); v != "" {
		return v
	}
	return "config.toml"
}

// Init loads the configuration and opens the database connection pool.
func Init() {
	cfg, err := Load(ConfigPath())
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	cfg.DB = db
	AppConfig = cfg
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the signing key for session tokens.
func JWTSecret() []byte {
	if AppConfig != nil && AppConfig.Auth.JWTSecret != "" {
		return []byte(AppConfig.Auth.JWTSecret)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	// Default for development only.
	return []byte("policy-pal-secret-key")
}
