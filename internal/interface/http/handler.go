package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/equigrid-api/internal/domain/energy"
)

const rootMessage = "EquiGridAI backend is running!"

// Handler wires the HTTP transport to the energy domain.
type Handler struct {
	energySvc energy.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(energySvc energy.Service, logger *slog.Logger) *Handler {
	return &Handler{
		energySvc: energySvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// Root is the liveness message served at /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// Healthz answers orchestrator probes.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Zone returns the synthetic 24h profile for the requested zone. Any identifier, including
// the empty one, is accepted.
func (h *Handler) Zone(c *gin.Context) {
	resp, err := h.energySvc.Zone(c.Request.Context(), c.Param("zoneId"))
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CleanerHours lists the cleaner hours of a fresh profile with display labels.
func (h *Handler) CleanerHours(c *gin.Context) {
	resp, err := h.energySvc.CleanerHours(c.Request.Context(), c.Param("zoneId"))
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NotFound renders unknown routes through the error envelope.
func (h *Handler) NotFound(c *gin.Context) {
	abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "route not found", nil))
}

// MethodNotAllowed renders unsupported methods on known routes.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	abortWithError(c, NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil))
}
