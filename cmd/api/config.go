package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const configNamespace = "APP"

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Port string `conf:"default:3002,env:PORT"`

	// CatalogPaths are tried in order; the first existing file is loaded.
	CatalogSource   string   `conf:"default:file,env:CATALOG_SOURCE"`
	CatalogPaths    []string `conf:"default:data/issuers.json;api/data/issuers.json;../data/issuers.json,env:CATALOG_PATHS"`
	CatalogRequired bool     `conf:"default:true,env:CATALOG_REQUIRED"`
	DBCon           string   `conf:"default:user=ps_user password=ps_password dbname=stablecard sslmode=disable host=localhost,env:DB_CONN,noprint"`

	LogLevel  string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat string `conf:"default:text,env:LOG_FORMAT"`

	AllowedOrigins    []string      `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`
	StaticDir         string        `conf:"env:STATIC_DIR"`
	ReadHeaderTimeout time.Duration `conf:"default:5s,env:READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `conf:"default:10s,env:SHUTDOWN_TIMEOUT"`

	NewRelicAppName string `conf:"default:stablecard-api,env:NEW_RELIC_APP_NAME"`
	NewRelicLicense string `conf:"env:NEW_RELIC_LICENSE_KEY,noprint"`
}

// ReadConfig loads an optional .env file and then parses flags and
// environment into a Config.
func ReadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	return parseConfig(os.Args[1:])
}

func parseConfig(args []string) (*Config, error) {
	var cfg Config
	err := conf.Parse(args, configNamespace, &cfg)

	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			if usage, uerr := conf.Usage(configNamespace, &cfg); uerr == nil {
				fmt.Println(usage)
			}
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.CatalogSource {
	case SourceFile:
		if len(c.CatalogPaths) == 0 {
			return errors.New("at least one catalog path is required for the file source")
		}
	case SourcePostgres:
		if c.DBCon == "" {
			return errors.New("a database connection string is required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.CatalogSource)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func configureLogging(cfg *Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
