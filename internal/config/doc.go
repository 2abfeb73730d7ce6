// Package config manages application configuration for the NextHire API.
//
// Configuration is parsed from environment variables via struct tags and
// validated once at startup. All configuration is centralized here to
// provide a single source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings (DB_ prefix)
//   - JWTConfig: token signing settings
//
// # Environment Variables
//
// Key environment variables:
//
//	PORT                  - HTTP server port (default: 3000)
//	SERVER_ENV            - development, production, or test
//	CORS_ALLOWED_ORIGINS  - comma-separated frontend origins
//	DB_HOST, DB_PORT      - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//	JWT_ACCESS_SECRET     - token signing secret (required)
//	JWT_EXPIRATION_DAYS   - token lifetime in days (default: 7)
package config
