package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

// Pinger is the slice of the connection pool the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness and readiness probes. Concurrent readiness
// requests collapse into a single database ping via singleflight.
type HealthHandler struct {
	db Pinger
	sf singleflight.Group
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Ready godoc
// @Summary      Readiness probe with per-dependency status
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	v, _, _ := h.sf.Do("db", func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		return h.db.Ping(ctx) == nil, nil
	})
	dbOK := v.(bool)
	c.JSON(http.StatusOK, gin.H{"ok": dbOK, "db": dbOK})
}
