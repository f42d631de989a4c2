package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger abstrae la verificación de conectividad con el store (lo cumple *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler sonda de vida: aplicación + conectividad a la base de datos.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// healthResponse cuerpo de la sonda. No usa el sobre {success,...}: es el único
// endpoint que expone el detalle del fallo del store.
type healthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp string            `json:"timestamp"`
}

// Health godoc
// @Summary      Sonda de vida y conectividad con la base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := healthResponse{
		Status: "healthy",
		Checks: map[string]string{
			"application": "ok",
			"database":    "unknown",
		},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		resp.Checks["database"] = "error: " + err.Error()
		resp.Status = "unhealthy"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	resp.Checks["database"] = "ok"
	return c.Status(fiber.StatusOK).JSON(resp)
}
