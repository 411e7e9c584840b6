package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timegrid/internal/config"
	"timegrid/internal/model"
)

// Server is the HTTP boundary of the timetable engine.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
	addr   string
}

func New(cfg *config.Config, timetabler model.Timetabler, logger *zap.Logger) *Server {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler := NewTimetableHandler(timetabler)
	api := router.Group("/api/v1")
	api.POST("/timetable", handler.Generate)

	return &Server{
		router: router,
		logger: logger,
		addr:   fmt.Sprintf(":%d", cfg.Port),
	}
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("listening", zap.String("addr", s.addr))
	return s.router.Run(s.addr)
}
