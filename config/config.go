/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/suparena/filestore/errors"
	"gopkg.in/yaml.v3"
)

// Supported backends.
const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config is the full runtime configuration.
type Config struct {
	Backend  string         `yaml:"backend" env:"FILESTORE_BACKEND"`
	File     FileConfig     `yaml:"file"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Log      LogConfig      `yaml:"log"`
}

// FileConfig configures the JSON file backend.
type FileConfig struct {
	Path string `yaml:"path" env:"FILESTORE_FILE_PATH"`
}

// DynamoDBConfig configures the DynamoDB backend.
type DynamoDBConfig struct {
	Region      string `yaml:"region" env:"FILESTORE_DDB_REGION"`
	Table       string `yaml:"table" env:"FILESTORE_DDB_TABLE"`
	AccessKey   string `yaml:"accessKey" env:"FILESTORE_DDB_ACCESS_KEY"`
	SecretKey   string `yaml:"secretKey" env:"FILESTORE_DDB_SECRET_KEY"`
	Endpoint    string `yaml:"endpoint" env:"FILESTORE_DDB_ENDPOINT"`
	Document    string `yaml:"document" env:"FILESTORE_DDB_DOCUMENT"`
	KeyTemplate string `yaml:"keyTemplate" env:"FILESTORE_DDB_KEY_TEMPLATE"`
}

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	Path     string `yaml:"path" env:"FILESTORE_SQLITE_PATH"`
	Document string `yaml:"document" env:"FILESTORE_SQLITE_DOCUMENT"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, disabled.
	Level string `yaml:"level" env:"LOG_LEVEL"`
	// Format is "console" for human-readable output or "json".
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Backend: BackendFile,
		File:    FileConfig{Path: "file.json"},
		DynamoDB: DynamoDBConfig{
			Region:      "us-east-1",
			Document:    "file.json",
			KeyTemplate: "FILESTORE#{Name}",
		},
		SQLite: SQLiteConfig{
			Path:     "filestore.db",
			Document: "file.json",
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if any),
// then a .env file in the working directory (if present), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads name into the process environment without overriding
// variables that are already set. A missing file is ignored.
func loadDotEnv(name string) error {
	err := godotenv.Load(name)
	if err == nil || stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", name, err)
}

// Validate checks that the selected backend is known and has what it needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.File.Path == "" {
			return errors.NewValidationError("file.path", "required for the file backend")
		}
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return errors.NewValidationError("dynamodb.table", "required for the dynamodb backend")
		}
		if c.DynamoDB.Region == "" {
			return errors.NewValidationError("dynamodb.region", "required for the dynamodb backend")
		}
		if (c.DynamoDB.AccessKey == "") != (c.DynamoDB.SecretKey == "") {
			return errors.NewValidationError("dynamodb.accessKey", "access key and secret key must be set together")
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return errors.NewValidationError("sqlite.path", "required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return errors.NewValidationError("backend", fmt.Sprintf("unsupported backend %q", c.Backend))
	}

	switch c.Log.Format {
	case "", "console", "json":
	default:
		return errors.NewValidationError("log.format", fmt.Sprintf("unsupported format %q", c.Log.Format))
	}
	return nil
}
