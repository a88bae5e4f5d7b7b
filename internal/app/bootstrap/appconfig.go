// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to CampusHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session credential configuration. The access and refresh keys MUST
	// differ so a renewal credential can never pass the access check.
	JWTAccessSecret  string        // Signing key for access credentials
	JWTRefreshSecret string        // Signing key for renewal credentials
	AccessTokenTTL   time.Duration // Access credential lifetime (short)
	RefreshTokenTTL  time.Duration // Renewal credential lifetime (long)
	CookieDomain     string        // Cookie domain (blank means current host)

	// Google OAuth configuration
	GoogleClientID string // OAuth2 client ID: the expected ID-token audience

	// Optional CSV of colleges to load at startup (blank disables)
	CollegesCSVPath string
}
