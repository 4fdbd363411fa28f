package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type RequisitesConfig struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	LogConfig    `yaml:"log_config"`
	Storage      `yaml:"storage"`
	RequisitesDB `yaml:"requisites_db"`
	RedisConfig  `yaml:"redis"`
	KafkaService `yaml:"kafka-service"`
	Pagination   `yaml:"pagination"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type Storage struct {
	Driver   string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Slot     string `yaml:"slot" env:"STORAGE_SLOT" env-default:"requisites_local"`
	FilePath string `yaml:"file_path" env:"STORAGE_FILE_PATH" env-default:"data/requisites_local.json"`
}

type RequisitesDB struct {
	Dsn            string `yaml:"dsn" env:"REQUISITES_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"REQUISITES_DB_MIGRATIONS_PATH"`
}

type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type KafkaService struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"requisite-events"`
}

// Enabled reports whether requisite events should be published.
func (k KafkaService) Enabled() bool {
	return k.Host != ""
}

type Pagination struct {
	PageSize int `yaml:"page_size" env:"PAGE_SIZE" env-default:"10"`
}

func Load(configPath string) (*RequisitesConfig, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg RequisitesConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch cfg.Storage.Driver {
	case StorageMemory, StorageFile, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == StoragePostgres && cfg.RequisitesDB.Dsn == "" {
		return nil, fmt.Errorf("requisites_db.dsn is required for postgres storage")
	}

	return &cfg, nil
}

func MustLoad() *RequisitesConfig {
	// Processing env config variable and file
	configPath := os.Getenv("REQUISITES_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REQUISITES_CONFIG_PATH was not found\n")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	return cfg
}
