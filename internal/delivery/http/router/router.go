package router

import (
	"time"

	"github.com/LavaJover/cognit-service/internal/delivery/http/handlers"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Participant *handlers.ParticipantHandler
	Submission  *handlers.SubmissionHandler
	Reward      *handlers.RewardHandler
	Payment     *handlers.PaymentHandler
	Admin       *handlers.AdminHandler
	Health      *handlers.HealthHandler
}

type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin uint
	AdminAPIKey     string
	// Gatherer backs /metrics. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

func Setup(log *zap.Logger, h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(log))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	limit := opts.RateLimitPerMin
	if limit == 0 {
		limit = 30
	}
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: limit,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Health)

		api.POST("/participants", limiter, h.Participant.Register)
		api.GET("/participants/:participant_id", h.Participant.GetParticipant)
		api.POST("/consent", h.Participant.RecordConsent)

		api.POST("/submit", limiter, h.Submission.Submit)
		api.GET("/submissions/:participant_id", h.Submission.ListSubmissions)

		api.GET("/rewards/:participant_id", h.Reward.GetRewardStatus)
		api.POST("/rewards/select", limiter, h.Reward.SelectWinner)

		payments := api.Group("/payments")
		{
			payments.POST("/orders", h.Payment.CreateOrder)
			payments.POST("/verify", h.Payment.VerifyPayment)
			payments.POST("/webhook", h.Payment.Webhook)
		}

		admin := api.Group("")
		admin.Use(AdminRequired(opts.AdminAPIKey, log))
		{
			admin.GET("/stats", h.Admin.GetStats)
			admin.PUT("/admin/attention-checks", h.Admin.UpsertAttentionCheck)
			admin.GET("/admin/export", h.Admin.ExportSubmissions)
		}
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", adminKeyHeader, requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}
	return cfg
}
