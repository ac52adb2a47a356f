package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/catalog-backend/internal/data/db"
	"github.com/yungbote/catalog-backend/internal/platform/envutil"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
	"github.com/yungbote/catalog-backend/internal/source"
)

type Config struct {
	Port    string
	LogMode string

	Source source.Config
	DB     db.Config
}

// fileConfig mirrors the optional config.yaml. File values act as defaults;
// environment variables always win.
type fileConfig struct {
	Port    string `yaml:"port"`
	LogMode string `yaml:"log_mode"`

	Source struct {
		ProductURL     string `yaml:"product_url"`
		BrandURL       string `yaml:"brand_url"`
		SamplePath     string `yaml:"sample_path"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"source"`

	Database struct {
		Driver     string `yaml:"driver"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// LoadConfig resolves configuration once at startup. The source selection
// (remote URL vs local sample file) is decided here, not per request.
func LoadConfig(log *logger.Logger) Config {
	file := readConfigFile(log)

	timeout := envutil.Int("SOURCE_TIMEOUT_SECONDS", orInt(file.Source.TimeoutSeconds, 20))

	return Config{
		Port:    envutil.String("PORT", orStr(file.Port, "8080")),
		LogMode: envutil.String("LOG_MODE", orStr(file.LogMode, "development")),
		Source: source.Config{
			ProductURL: envutil.String("EXTERNAL_API_URL", file.Source.ProductURL),
			BrandURL:   envutil.String("BRAND_API_URL", file.Source.BrandURL),
			SamplePath: envutil.String("LOCAL_SAMPLE_PATH", orStr(file.Source.SamplePath, "sample_electronics.json")),
			Timeout:    time.Duration(timeout) * time.Second,
		},
		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", orStr(file.Database.Driver, "postgres")),
			Host:       envutil.String("POSTGRES_HOST", orStr(file.Database.Host, "localhost")),
			Port:       envutil.String("POSTGRES_PORT", orStr(file.Database.Port, "5432")),
			User:       envutil.String("POSTGRES_USER", orStr(file.Database.User, "postgres")),
			Password:   envutil.String("POSTGRES_PASSWORD", file.Database.Password),
			Name:       envutil.String("POSTGRES_NAME", orStr(file.Database.Name, "catalog")),
			SQLitePath: envutil.String("SQLITE_PATH", orStr(file.Database.SQLitePath, "catalog.db")),
		},
	}
}

func readConfigFile(log *logger.Logger) fileConfig {
	var out fileConfig
	path := envutil.String("CONFIG_PATH", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not read config file", "path", path, "error", err)
		}
		return out
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		log.Warn("could not parse config file, ignoring it", "path", path, "error", err)
		return fileConfig{}
	}
	log.Info("loaded config file defaults", "path", path)
	return out
}

func orStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
