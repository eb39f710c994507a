package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a store the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports store connectivity
type HealthController struct {
	checks map[string]Pinger
}

// NewHealthController creates a HealthController probing each named store
func NewHealthController(checks map[string]Pinger) *HealthController {
	return &HealthController{checks: checks}
}

// Health pings every store and answers 503 when any of them fails
func (hc *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: make(map[string]string, len(hc.checks))}
	status := http.StatusOK

	for name, store := range hc.checks {
		if err := store.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Str("store", name).Msg("Health check failed")
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	ctx.JSON(status, resp)
}
