// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authgooglefeature "github.com/dalemusser/campushub/internal/app/features/authgoogle"
	collegesfeature "github.com/dalemusser/campushub/internal/app/features/colleges"
	eventsfeature "github.com/dalemusser/campushub/internal/app/features/events"
	healthfeature "github.com/dalemusser/campushub/internal/app/features/health"
	societiesfeature "github.com/dalemusser/campushub/internal/app/features/societies"
	usersfeature "github.com/dalemusser/campushub/internal/app/features/users"
	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	eventstore "github.com/dalemusser/campushub/internal/app/store/events"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/app/system/googleid"
)

// BuildHandler assembles the HTTP handler tree for the app.
//
// Stores wrap collections, features wrap stores, and the session manager
// sits in front of everything that needs an account. WAFFLE owns the
// outer server (ports, TLS, graceful shutdown); this function only
// returns the root handler.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	accounts := accountstore.New(db)
	colleges := collegestore.New(db)
	orgs := organizationstore.New(db)
	events := eventstore.New(db)

	// Cookies are marked Secure outside local development.
	secure := coreCfg.Env == "prod"

	tokens, err := auth.NewTokenManager(
		appCfg.JWTAccessSecret,
		appCfg.JWTRefreshSecret,
		appCfg.CookieDomain,
		appCfg.AccessTokenTTL,
		appCfg.RefreshTokenTTL,
		secure,
		logger,
	)
	if err != nil {
		return nil, err
	}

	sessionMgr := auth.NewSessionManager(tokens, logger)
	sessionMgr.SetAccountFetcher(accountstore.NewFetcher(db))

	verifier := googleid.NewGoogle(appCfg.GoogleClientID)

	authGoogleHandler := authgooglefeature.NewHandler(verifier, accounts, colleges, sessionMgr, logger)
	usersHandler := usersfeature.NewHandler(accounts, orgs, sessionMgr, logger)
	collegesHandler := collegesfeature.NewHandler(colleges, orgs, logger)
	societiesHandler := societiesfeature.NewHandler(accounts, colleges, orgs, logger)
	eventsHandler := eventsfeature.NewHandler(events, orgs, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// Resolve the signed-in account (when present) for every request.
	// RequireSignedIn inside feature route groups enforces it.
	r.Use(sessionMgr.LoadSessionAccount)

	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/users/google-auth", authgooglefeature.Routes(authGoogleHandler))
		api.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))
		api.Mount("/colleges", collegesfeature.Routes(collegesHandler, sessionMgr))
		api.Mount("/societies", societiesfeature.Routes(societiesHandler, sessionMgr))
		api.Mount("/events", eventsfeature.Routes(eventsHandler, sessionMgr))
	})

	return r, nil
}
