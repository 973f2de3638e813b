package dashboard

import (
	"context"
	"net/http"

	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/response"
	"gestao/internal/service/dashboardservice"
)

type DashboardService interface {
	Summary(ctx context.Context) (dashboardservice.Summary, error)
}

type Handler struct {
	Service DashboardService
	Logger  logger.Logger
}

func NewHandler(svc DashboardService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// SummaryHandler lida com a requisição GET /v1/dashboard.
// @Summary Indicadores do painel
// @Description Saldo atual, valor do estoque, saldo do mês corrente e produtos com estoque baixo.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboardservice.Summary
// @Failure 503 {object} domain.ErrorResponse "Banco de dados indisponível"
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (h *Handler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	response.Handle(w, r, h.Logger, summary, err, http.StatusOK)
}
