package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/field-tracker/internal/pkg/httputil"
)

type Router struct {
	engine          *gin.Engine
	trackingHandler *handler.TrackingHandler
	logHandler      *handler.LogHandler
	logger          *zap.Logger
}

type RouterConfig struct {
	TrackingHandler *handler.TrackingHandler
	LogHandler      *handler.LogHandler
	Logger          *zap.Logger
	Environment     string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		trackingHandler: cfg.TrackingHandler,
		logHandler:      cfg.LogHandler,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.NoRoute(func(c *gin.Context) {
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "route not found")
	})

	api := r.engine.Group("/api/v1")
	{
		api.GET("/status", r.trackingHandler.Status)
		api.GET("/track", r.trackingHandler.Track)
		api.GET("/logs", r.logHandler.List)
		api.POST("/samples", r.trackingHandler.PushSample)

		position := api.Group("/position")
		{
			position.GET("", r.trackingHandler.Position)
			position.GET("/stream", r.trackingHandler.Stream)
		}

		session := api.Group("/session")
		{
			session.POST("/start", r.trackingHandler.StartSession)
			session.POST("/stop", r.trackingHandler.StopSession)
		}

		lifecycle := api.Group("/lifecycle")
		{
			lifecycle.POST("/pause", r.trackingHandler.Pause)
			lifecycle.POST("/resume", r.trackingHandler.Resume)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
