// Package rest serves the battle API over HTTP
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokebattle/battle-api/internal/errors"
	v1alpha1 "github.com/pokebattle/battle-api/internal/handlers/api/v1alpha1"
	"github.com/pokebattle/battle-api/internal/orchestrators/battle"
)

// Routes served by the handler
const (
	RouteBattle              = "/battle"
	RouteShowPreviousBattles = "/show_previous_battles"
	RouteHealth              = "/healthz"
)

const jsonKeyError = "error"

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	BattleService battle.Service
	// HealthCheck is optional; without it /healthz always reports ok
	HealthCheck HealthCheck
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler groups the battle HTTP handlers
type Handler struct {
	battleService battle.Service
	healthCheck   HealthCheck
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService: cfg.BattleService,
		healthCheck:   cfg.HealthCheck,
	}, nil
}

// Register mounts the battle routes on router
func (h *Handler) Register(router gin.IRouter) {
	router.GET(RouteBattle, h.Battle)
	router.GET(RouteShowPreviousBattles, h.ShowPreviousBattles)
	router.GET(RouteHealth, h.Health)
}

// NewRouter builds a gin engine with recovery, request logging and the battle routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	h.Register(router)
	return router
}

// Battle handles GET /battle?pokemon1=&pokemon2=
func (h *Handler) Battle(c *gin.Context) {
	output, err := h.battleService.Battle(c.Request.Context(), &battle.BattleInput{
		Pokemon1: c.Query("pokemon1"),
		Pokemon2: c.Query("pokemon2"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1alpha1.NewBattleResponse(output))
}

// ShowPreviousBattles handles GET /show_previous_battles?limit=N
func (h *Handler) ShowPreviousBattles(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(c, errors.InvalidArgumentf("limit must be a number, got %q", s))
			return
		}
		limit = n
	}

	output, err := h.battleService.ListBattles(c.Request.Context(), &battle.ListBattlesInput{Limit: limit})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1alpha1.NewListBattlesResponse(output.Battles))
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	if h.healthCheck != nil {
		if err := h.healthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", jsonKeyError: err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError responds with the client-facing status for err
func writeError(c *gin.Context, err error) {
	code := errors.ClientCode(err)
	if code == errors.CodeInternal {
		slog.Error("Request failed",
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	c.JSON(code.HTTPStatus(), gin.H{jsonKeyError: errors.GetMessage(err)})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
