// Package config handles loading and validation of application configuration.
package config

import "fmt"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// DatabaseConfig contains all database-related configuration settings.
// Connectivity is configured piecewise (host, user, password, name) the
// way the deployment environment provides it.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	User     string `mapstructure:"user"     validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"     validate:"required"`
	SSLMode  string `mapstructure:"sslmode"  validate:"required"`
}

// URL assembles the postgres connection string from the individual
// settings.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// AuthConfig contains all authentication and session settings.
type AuthConfig struct {
	// SessionSecret signs the session cookie. Sessions issued with a
	// different secret fail validation.
	SessionSecret string `mapstructure:"session_secret" validate:"required,min=32"`

	// SessionLifetimeHours is the absolute session lifetime. Sessions
	// are not renewed on activity.
	SessionLifetimeHours int `mapstructure:"session_lifetime_hours" validate:"required,gt=0"`
}
