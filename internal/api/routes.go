package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gitfolio/gitfolio/internal/ratelimit"
)

// SetupRouter wires middleware and routes. The limiter may be nil to
// disable per-IP rate limiting, e.g. in tests.
func SetupRouter(h *Handler, limiter *ratelimit.Limiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.Middleware())
	}
	v1.GET("/analyze/:username", h.Analyze)

	return r
}
