package config

import (
	"errors"
	"fmt"
	"time"
)

// Config описывает конфигурацию приложения.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Identity IdentityConfig `mapstructure:"identity"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate проверяет обязательные поля.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.Identity.Mode != "local" {
		return fmt.Errorf("identity.mode %q is not supported (only local)", c.Identity.Mode)
	}
	return nil
}

// ServerAddr возвращает host:port для запуска HTTP-сервера.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig содержит настройки HTTP-сервера.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// IdentityConfig задаёт режим проверки учётных данных.
// Поддерживается local; режим ldap зарезервирован за отдельной
// реализацией identity.Provider.
type IdentityConfig struct {
	Mode string `mapstructure:"mode"`
}

// LoggingConfig содержит настройки логгера.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PostgresConfig описывает параметры подключения к базе данных.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
}

// DSN возвращает строку подключения к Postgres.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}
