package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/usecase/dto"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck - проверка одной зависимости
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler - состояние сервиса и его зависимостей
type HealthHandler struct {
	checks []HealthCheck
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(logger *zap.Logger, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Проверяет базу данных и хранилище кеша
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status: "healthy",
		Checks: make(map[string]string, len(h.checks)),
	}
	for _, hc := range h.checks {
		if err := hc.Check(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("check", hc.Name), zap.Error(err))
			resp.Checks[hc.Name] = "unhealthy"
			resp.Status = "unhealthy"
			continue
		}
		resp.Checks[hc.Name] = "healthy"
	}
	resp.Duration = time.Since(start).String()

	status := fiber.StatusOK
	if resp.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
