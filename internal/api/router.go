package api

import (
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ArjunParadkar/M.A.M.A/config"
	"github.com/ArjunParadkar/M.A.M.A/internal/mw"
	"github.com/ArjunParadkar/M.A.M.A/internal/notification"
	"github.com/ArjunParadkar/M.A.M.A/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, pool *notification.WorkerPool, cfg *config.Config, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, pool, cfg, webpushOptions)

	limit := rate.Limit(cfg.Server.RateLimitPerSec)
	if limit <= 0 {
		limit = rate.Limit(10)
	}
	rateLimiter := mw.RateLimit(limit, 5, cfg.Server.RequestIPHeader)

	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	caching := mw.NewResponseCache(ttl).Handler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		ai := api.Group("/ai")
		{
			ai.POST("/workflow", handler.PostWorkflow)
			ai.POST("/pay", handler.PostPay)
			ai.POST("/rank", handler.PostRank)
			ai.POST("/rate", handler.PostRate)
			ai.POST("/time", handler.PostTime)
		}

		api.POST("/jobs", handler.PostJob)
		api.GET("/jobs", caching, handler.GetOpenJobs)
		api.GET("/jobs/recommended", handler.GetRecommendedJobs)
		api.GET("/jobs/:id", handler.GetJob)

		api.PUT("/devices", handler.PutDevices)
		api.GET("/manufacturers/:id/devices", caching, handler.GetDevices)
		api.POST("/manufacturers/:id/ratings", handler.PostRating)
		api.GET("/manufacturers/:id/ratings", caching, handler.GetRatings)
		api.GET("/manufacturers/:id/earnings", handler.GetEarnings)

		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
