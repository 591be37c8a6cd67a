package bootstrap

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/config"
	httpapi "github.com/personalweb/portfolio-backend/internal/api/http"
	apimw "github.com/personalweb/portfolio-backend/internal/api/http/middleware"
	"github.com/personalweb/portfolio-backend/internal/auth"
	authmw "github.com/personalweb/portfolio-backend/internal/auth/middleware"
	"github.com/personalweb/portfolio-backend/internal/events"
	portfoliohttp "github.com/personalweb/portfolio-backend/internal/portfolio/http"
	"github.com/personalweb/portfolio-backend/internal/portfolio/service"
)

type RouterDeps struct {
	ServiceName string
	App         *App
	// Verifier overrides the Firebase token check; tests set it.
	Verifier authmw.TokenVerifier
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	a := dep.App
	cfg := a.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestIDMiddleware(a.Logger.Named("http")))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	httpapi.NewHealthHandler(dep.ServiceName, cfg.App.Version, cfg.Store.Source, a.StoreName(), a.Pinger()).RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(a.Facade.Middleware())

	svc := service.NewPortfolioService(a.Logger.Named("service"), nil)
	h := portfoliohttp.New(svc, a.Logger.Named("http"))
	h.RegisterPublic(api, portfoliohttp.RateLimit(cfg.Server.ContactRatePerMin))

	admin := api.Group("/admin")
	guard, err := adminGuard(cfg, a, dep.Verifier)
	if err != nil {
		return nil, err
	}
	if guard != nil {
		admin.Use(guard)
	}
	h.RegisterAdmin(admin)
	admin.GET("/events", events.WSHandler(a.Hub))

	return r, nil
}

func adminGuard(cfg *config.Config, a *App, verifier authmw.TokenVerifier) (gin.HandlerFunc, error) {
	switch cfg.Admin.Auth {
	case config.AdminAuthAPIKey:
		return authmw.APIKeyMiddleware(cfg.Admin.APIKey), nil
	case config.AdminAuthFirebase:
		if verifier == nil {
			client, err := auth.InitializeFirebase(context.Background(), a.Firebase)
			if err != nil {
				return nil, err
			}
			verifier = client
		}
		return authmw.FirebaseAuthMiddleware(verifier), nil
	default:
		a.Logger.Warn("admin routes are not protected", zap.String("ADMIN_AUTH", cfg.Admin.Auth))
		return nil, nil
	}
}
