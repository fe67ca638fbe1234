package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Хранилища истории
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

const (
	defaultEnv            = EnvLocal
	defaultLogLevel       = "info"
	defaultConfigDir      = ".vindecoder"
	defaultDataFile       = "history.db"
	defaultDecodeBaseURL  = "https://vpic.nhtsa.dot.gov/api/vehicles/decodevin"
	defaultServerAddress  = "localhost:8080"
	defaultHistoryBackend = BackendSQLite
	defaultScannerCommand = "zbarcam --raw --nodisplay"
	defaultScanBuffer     = 16
	defaultRedisAddr      = "localhost:6379"
)

type Config struct {
	Env            string   `mapstructure:"app_env"`
	LogLevel       string   `mapstructure:"log_level"`
	ConfigDir      string   `mapstructure:"config_dir"`
	DataPath       string   `mapstructure:"data_path"`
	DecodeBaseURL  string   `mapstructure:"decode_base_url"`
	DecodeTimeout  int      `mapstructure:"decode_timeout_seconds"`
	HistoryBackend string   `mapstructure:"history_backend"`
	DatabaseURI    string   `mapstructure:"database_uri"`
	RedisAddr      string   `mapstructure:"redis_addr"`
	RedisDB        int      `mapstructure:"redis_db"`
	ServerAddress  string   `mapstructure:"server_address"`
	ScannerCommand []string `mapstructure:"scanner_command"`
	ScanBuffer     int      `mapstructure:"scan_buffer"`
}

// Load загружает конфигурацию из .env, переменных окружения и config.yaml (если прочитан viper)
func Load() (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("DECODE_BASE_URL", defaultDecodeBaseURL)
	viper.SetDefault("DECODE_TIMEOUT_SECONDS", 0)
	viper.SetDefault("HISTORY_BACKEND", defaultHistoryBackend)
	viper.SetDefault("REDIS_ADDR", defaultRedisAddr)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("SCANNER_COMMAND", defaultScannerCommand)
	viper.SetDefault("SCAN_BUFFER", defaultScanBuffer)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	cfg := &Config{
		Env:            viper.GetString("APP_ENV"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		DecodeBaseURL:  strings.TrimRight(viper.GetString("DECODE_BASE_URL"), "/"),
		DecodeTimeout:  viper.GetInt("DECODE_TIMEOUT_SECONDS"),
		HistoryBackend: strings.ToLower(viper.GetString("HISTORY_BACKEND")),
		DatabaseURI:    viper.GetString("DATABASE_URI"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		RedisDB:        viper.GetInt("REDIS_DB"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		ScannerCommand: strings.Fields(viper.GetString("SCANNER_COMMAND")),
		ScanBuffer:     viper.GetInt("SCAN_BUFFER"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	if cfg.HistoryBackend == BackendSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0700); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка создания директории данных: %v\n", err)
		}
	}

	return cfg, nil
}

// MustLoad как Load, но паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.DecodeBaseURL == "" {
		return fmt.Errorf("decode_base_url не может быть пустым")
	}
	if c.DecodeTimeout < 0 {
		return fmt.Errorf("decode_timeout_seconds не может быть отрицательным")
	}
	switch c.HistoryBackend {
	case BackendSQLite:
		if c.DataPath == "" {
			return fmt.Errorf("data_path не может быть пустым")
		}
	case BackendPostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("database_uri обязателен для postgres")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis_addr обязателен для redis")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("неизвестное хранилище истории: %q", c.HistoryBackend)
	}
	if c.ScanBuffer <= 0 {
		return fmt.Errorf("scan_buffer должен быть больше нуля")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
