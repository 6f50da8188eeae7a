package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the keyword/value connection string for GORM.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the postgres:// connection URL used by the migration runner.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// ServerConfig holds all configuration for the ShareIt server.
type ServerConfig struct {
	Addr          string
	AppEnv        string
	MigrationsDir string
	DB            DatabaseConfig
	KafkaBrokers  []string
}

// GatewayConfig holds all configuration for the ShareIt gateway.
type GatewayConfig struct {
	Addr      string
	AppEnv    string
	ServerURL string
}

// newViper prepares an environment-backed viper instance with the SHAREIT prefix.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SHAREIT")
	v.AutomaticEnv()
	return v
}

// LoadServer reads server configuration from SHAREIT_* environment variables.
func LoadServer() (*ServerConfig, error) {
	v := newViper()
	v.SetDefault("server_addr", ":9090")
	v.SetDefault("app_env", "development")
	v.SetDefault("migrations_dir", "migrations")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "shareit")
	v.SetDefault("db_password", "shareit")
	v.SetDefault("db_name", "shareit")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_brokers", "")

	cfg := &ServerConfig{
		Addr:          v.GetString("server_addr"),
		AppEnv:        v.GetString("app_env"),
		MigrationsDir: v.GetString("migrations_dir"),
		DB: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
	}
	if brokers := v.GetString("kafka_brokers"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if cfg.DB.Name == "" {
		return nil, fmt.Errorf("database name must not be empty")
	}
	return cfg, nil
}

// LoadGateway reads gateway configuration from SHAREIT_* environment variables.
func LoadGateway() (*GatewayConfig, error) {
	v := newViper()
	v.SetDefault("gateway_addr", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("server_url", "http://localhost:9090")

	cfg := &GatewayConfig{
		Addr:      v.GetString("gateway_addr"),
		AppEnv:    v.GetString("app_env"),
		ServerURL: v.GetString("server_url"),
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server URL must not be empty")
	}
	return cfg, nil
}
