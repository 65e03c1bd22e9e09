// ABOUTME: HTTP server assembly: gin router, middleware and template loading
// ABOUTME: Wraps the router with CORS for the final handler

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"newsdesk-api/api/handlers"
	"newsdesk-api/api/middleware"
	"newsdesk-api/core/interfaces"
)

// Config holds configuration for the HTTP surface.
type Config struct {
	Logger       interfaces.Logger
	TemplateGlob string  // path glob for HTML templates
	RatePerSec   float64 // 0 disables rate limiting
	RateBurst    int
}

// NewRouter builds the gin engine with middleware, templates and routes.
func NewRouter(cfg Config, h *handlers.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLogging(cfg.Logger))
	}
	if cfg.RatePerSec > 0 {
		router.Use(middleware.RateLimit(cfg.RatePerSec, cfg.RateBurst))
	}

	if cfg.TemplateGlob != "" {
		router.LoadHTMLGlob(cfg.TemplateGlob)
	}

	h.RegisterRoutes(router)
	return router
}

// WrapCORS wraps the handler with a permissive CORS policy.
func WrapCORS(h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	}).Handler(h)
}
