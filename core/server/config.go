package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// ApiKey protects the /api routes when set.
	ApiKey string `mapstructure:"api_key" default:""`
	// StaticDir is the built web client served at the root. Empty disables it.
	StaticDir string `mapstructure:"static_dir" default:""`
	// CorsOrigins is a comma separated list of allowed origins.
	CorsOrigins string `mapstructure:"cors_origins" default:"*"`
	// ShutdownSeconds bounds graceful shutdown.
	ShutdownSeconds int `mapstructure:"shutdown_seconds" default:"10"`
}

// Address returns the listen address for Port.
func (c Config) Address() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
