package transaction

import (
	"context"
	"net/http"
	"time"

	"gestao/internal/api/params"
	"gestao/internal/domain"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/money"
	"gestao/internal/pkg/response"
)

// CashService define o contrato que o Handler espera do Serviço de Caixa.
type CashService interface {
	CreateTransaction(ctx context.Context, req domain.TransactionRequest) (domain.FinancialTransaction, error)
	GetTransactionByID(ctx context.Context, id int64) (domain.FinancialTransaction, error)
	ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.FinancialTransaction, error)
	CurrentBalance(ctx context.Context) (int64, error)
	MonthlyBalance(ctx context.Context, year, month int) (domain.BalanceSummary, error)
}

// Handler expõe os lançamentos do fluxo de caixa.
type Handler struct {
	Service  CashService
	Logger   logger.Logger
	Location *time.Location
}

func NewHandler(svc CashService, loc *time.Location, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log, Location: loc}
}

// BalanceResponse é o saldo atual.
type BalanceResponse struct {
	Balance money.Amount `json:"balance"`
}

// MonthlyBalanceResponse é o resumo de um mês.
type MonthlyBalanceResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	domain.BalanceSummary
}

// CreateTransactionHandler lida com a requisição POST /v1/transactions.
// @Summary Registra um lançamento financeiro
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body domain.TransactionRequest true "Lançamento (valor em centavos)"
// @Success 201 {object} domain.FinancialTransaction
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security ApiKeyAuth
// @Router /transactions [post]
func (h *Handler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.TransactionRequest
	if err := params.DecodeJSON(r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateTransaction(r.Context(), req)
	response.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetTransactionByIDHandler lida com a requisição GET /v1/transactions/{id}.
// @Summary Obtém um lançamento por ID
// @Tags transactions
// @Produce json
// @Param id path int true "ID do lançamento"
// @Success 200 {object} domain.FinancialTransaction
// @Failure 404 {object} domain.ErrorResponse "Lançamento não encontrado"
// @Security ApiKeyAuth
// @Router /transactions/{id} [get]
func (h *Handler) GetTransactionByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	t, err := h.Service.GetTransactionByID(r.Context(), id)
	response.Handle(w, r, h.Logger, t, err, http.StatusOK)
}

// ListTransactionsHandler lida com a requisição GET /v1/transactions.
// @Summary Lista lançamentos, mais recentes primeiro
// @Tags transactions
// @Produce json
// @Param start query string false "Início (RFC3339 ou AAAA-MM-DD)"
// @Param end query string false "Fim inclusivo (RFC3339 ou AAAA-MM-DD)"
// @Success 200 {array} domain.FinancialTransaction
// @Security ApiKeyAuth
// @Router /transactions [get]
func (h *Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	start, end, err := params.DateRange(r, h.Location)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	transactions, err := h.Service.ListTransactions(r.Context(), start, end)
	response.Handle(w, r, h.Logger, transactions, err, http.StatusOK)
}

// CurrentBalanceHandler lida com a requisição GET /v1/transactions/balance.
// @Summary Saldo atual (entradas menos saídas)
// @Tags transactions
// @Produce json
// @Success 200 {object} BalanceResponse
// @Security ApiKeyAuth
// @Router /transactions/balance [get]
func (h *Handler) CurrentBalanceHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Service.CurrentBalance(r.Context())
	response.Handle(w, r, h.Logger, BalanceResponse{Balance: money.NewAmount(balance)}, err, http.StatusOK)
}

// MonthlyBalanceHandler lida com a requisição GET /v1/transactions/monthly-balance.
// @Summary Entradas, saídas e saldo de um mês
// @Tags transactions
// @Produce json
// @Param year query int true "Ano"
// @Param month query int true "Mês (1 a 12)"
// @Success 200 {object} MonthlyBalanceResponse
// @Failure 400 {object} domain.ErrorResponse "Mês inválido"
// @Security ApiKeyAuth
// @Router /transactions/monthly-balance [get]
func (h *Handler) MonthlyBalanceHandler(w http.ResponseWriter, r *http.Request) {
	year, err := params.RequiredInt(r, "year")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	month, err := params.RequiredInt(r, "month")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	summary, err := h.Service.MonthlyBalance(r.Context(), year, month)
	response.Handle(w, r, h.Logger, MonthlyBalanceResponse{Year: year, Month: month, BalanceSummary: summary}, err, http.StatusOK)
}
