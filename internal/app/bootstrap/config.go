// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for CampusHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_access_secret, etc.
//   - Environment variables: CAMPUSHUB_MONGO_URI, CAMPUSHUB_JWT_ACCESS_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_access_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "campus_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Session credentials
	{Name: "jwt_access_secret", Default: "", Desc: "Signing key for access tokens (required)"},
	{Name: "jwt_refresh_secret", Default: "", Desc: "Signing key for refresh tokens (required, must differ from access key)"},
	{Name: "access_token_ttl", Default: "15m", Desc: "Access token lifetime (e.g., 15m, 1h)"},
	{Name: "refresh_token_ttl", Default: "720h", Desc: "Refresh token lifetime (e.g., 720h for 30 days)"},
	{Name: "cookie_domain", Default: "", Desc: "Auth cookie domain (blank means current host)"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID (ID-token audience)"},

	// Optional bulk college load at startup
	{Name: "colleges_csv_path", Default: "", Desc: "Path to a colleges CSV to import at startup (blank disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, CAMPUSHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPUSHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTAccessSecret:  appValues.String("jwt_access_secret"),
		JWTRefreshSecret: appValues.String("jwt_refresh_secret"),
		AccessTokenTTL:   appValues.Duration("access_token_ttl", 15*time.Minute),
		RefreshTokenTTL:  appValues.Duration("refresh_token_ttl", 30*24*time.Hour),
		CookieDomain:     appValues.String("cookie_domain"),

		GoogleClientID: appValues.String("google_client_id"),

		CollegesCSVPath: appValues.String("colleges_csv_path"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// CampusHub validates the MongoDB URI format and the signing-key setup to
// catch configuration errors early, before attempting to connect. A
// missing or shared signing key is a startup-class failure, not a
// per-request one.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTAccessSecret == "" || appCfg.JWTRefreshSecret == "" {
		return fmt.Errorf("jwt_access_secret and jwt_refresh_secret are required")
	}
	if appCfg.JWTAccessSecret == appCfg.JWTRefreshSecret {
		return fmt.Errorf("jwt_access_secret and jwt_refresh_secret must differ")
	}
	if appCfg.GoogleClientID == "" {
		logger.Warn("google_client_id is not set; sign-in will reject all ID tokens")
	}

	return nil
}
