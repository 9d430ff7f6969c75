package config

import (
	"encoding/json"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"marketplace"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address        string `envconfig:"MARKETPLACE_ADDRESS" default:":3443"`
	MetricsAddress string `envconfig:"MARKETPLACE_METRICS_ADDRESS" default:":8080"`
	BaseUrl        string `envconfig:"MARKETPLACE_BASE_URL" default:"https://localhost:3443"`
	LogLevel       string `envconfig:"MARKETPLACE_LOG_LEVEL" default:"info"`
	Authentication string `envconfig:"MARKETPLACE_AUTH" default:"header"`
	CorsOrigins    string `envconfig:"MARKETPLACE_CORS_ORIGINS" default:"*"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewDefault returns a config without consulting the environment,
// mainly for tests.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{Type: "sqlite", Name: ":memory:"},
		Service:  &svcConfig{LogLevel: "info", Authentication: "none"},
	}
}

func (c Config) String() string {
	val, err := json.Marshal(c)
	if err != nil {
		return "<error>"
	}
	return string(val)
}
