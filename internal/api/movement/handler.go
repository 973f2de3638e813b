package movement

import (
	"context"
	"net/http"
	"time"

	"gestao/internal/api/params"
	"gestao/internal/domain"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/response"
)

// MovementService define o contrato que o Handler espera da camada de Serviço.
type MovementService interface {
	RecordMovement(ctx context.Context, req domain.MovementRequest) (domain.MovementResult, error)
	GetMovementByID(ctx context.Context, id int64) (domain.StockMovement, error)
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.StockMovement, error)
}

// Handler expõe as movimentações de estoque.
type Handler struct {
	Service  MovementService
	Logger   logger.Logger
	Location *time.Location
}

// NewHandler cria o Handler. loc interpreta datas AAAA-MM-DD dos filtros.
func NewHandler(svc MovementService, loc *time.Location, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log, Location: loc}
}

// RecordMovementHandler lida com a requisição POST /v1/movements.
// @Summary Registra uma entrada ou saída de estoque
// @Description Grava a movimentação e ajusta a quantidade do produto. Se o produto não existir a movimentação é gravada com product_adjusted=false.
// @Tags movements
// @Accept json
// @Produce json
// @Param movement body domain.MovementRequest true "Movimentação"
// @Success 201 {object} domain.MovementResult
// @Failure 400 {object} domain.ErrorResponse "Quantidade ou tipo inválidos"
// @Failure 503 {object} domain.ErrorResponse "Banco de dados indisponível"
// @Security ApiKeyAuth
// @Router /movements [post]
func (h *Handler) RecordMovementHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.MovementRequest
	if err := params.DecodeJSON(r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	result, err := h.Service.RecordMovement(r.Context(), req)
	response.Handle(w, r, h.Logger, result, err, http.StatusCreated)
}

// GetMovementByIDHandler lida com a requisição GET /v1/movements/{id}.
// @Summary Obtém uma movimentação por ID
// @Tags movements
// @Produce json
// @Param id path int true "ID da movimentação"
// @Success 200 {object} domain.StockMovement
// @Failure 404 {object} domain.ErrorResponse "Movimentação não encontrada"
// @Security ApiKeyAuth
// @Router /movements/{id} [get]
func (h *Handler) GetMovementByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	movement, err := h.Service.GetMovementByID(r.Context(), id)
	response.Handle(w, r, h.Logger, movement, err, http.StatusOK)
}

// ListMovementsHandler lida com a requisição GET /v1/movements.
// @Summary Lista movimentações, mais recentes primeiro
// @Tags movements
// @Produce json
// @Param product_id query int false "Filtra por produto"
// @Param start query string false "Início (RFC3339 ou AAAA-MM-DD)"
// @Param end query string false "Fim inclusivo (RFC3339 ou AAAA-MM-DD)"
// @Success 200 {array} domain.StockMovement
// @Security ApiKeyAuth
// @Router /movements [get]
func (h *Handler) ListMovementsHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := params.OptionalInt64(r, "product_id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	start, end, err := params.DateRange(r, h.Location)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	movements, err := h.Service.ListMovements(r.Context(), domain.MovementFilter{
		ProductID: productID,
		Start:     start,
		End:       end,
	})
	response.Handle(w, r, h.Logger, movements, err, http.StatusOK)
}
