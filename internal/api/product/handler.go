package product

import (
	"context"
	"net/http"

	"gestao/internal/api/params"
	"gestao/internal/domain"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/middleware"
	"gestao/internal/pkg/money"
	"gestao/internal/pkg/response"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	TotalInventoryValue(ctx context.Context) (int64, error)
	LowStock(ctx context.Context, threshold *int) ([]domain.Product, error)
}

// CreateProductRequest é o payload de criação de produto.
type CreateProductRequest struct {
	Name          string `json:"name" example:"Caneta azul"`
	Category      string `json:"category" example:"Papelaria"`
	Quantity      int    `json:"quantity" example:"100"`
	PurchasePrice int64  `json:"purchase_price" example:"150"`
	SalePrice     int64  `json:"sale_price" example:"300"`
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Handle(w, r, h.Logger, data, err, successStatus)
}

// CreateProductHandler lida com a requisição POST /v1/products.
// @Summary Cria um novo produto
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Dados do produto (preços em centavos)"
// @Success 201 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 503 {object} domain.ErrorResponse "Banco de dados indisponível"
// @Security ApiKeyAuth
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := params.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
		h.Logger.Debug("Criação de produto solicitada.", map[string]interface{}{"user_id": claims.UserID})
	}

	created, err := h.Service.CreateProduct(r.Context(), domain.Product{
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
	})
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
// @Summary Obtém um produto por ID
// @Tags products
// @Produce json
// @Param id path int true "ID do Produto"
// @Success 200 {object} domain.Product
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.ID(r, "id")
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	product, err := h.Service.GetProductByID(r.Context(), id)
	h.handleServiceResponse(w, r, product, err, http.StatusOK)
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista os produtos, mais recentes primeiro
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Security ApiKeyAuth
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.ListProducts(r.Context())
	h.handleServiceResponse(w, r, products, err, http.StatusOK)
}

// UpdateProductHandler lida com a requisição PUT /v1/products/{id}.
// @Summary Atualiza parcialmente um produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "ID do Produto"
// @Param product body domain.ProductUpdate true "Campos a alterar"
// @Success 200 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.ID(r, "id")
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	var upd domain.ProductUpdate
	if err := params.DecodeJSON(r, &upd); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	updated, err := h.Service.UpdateProduct(r.Context(), id, upd)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteProductHandler lida com a requisição DELETE /v1/products/{id}.
// @Summary Remove um produto
// @Tags products
// @Param id path int true "ID do Produto"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse "Apenas administradores"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.ID(r, "id")
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
		return
	}

	err = h.Service.DeleteProduct(r.Context(), id)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// InventoryValueResponse é o valor total do estoque.
type InventoryValueResponse struct {
	TotalValue money.Amount `json:"total_value"`
}

// InventoryValueHandler lida com a requisição GET /v1/products/inventory-value.
// @Summary Valor total do estoque (quantidade x preço de compra)
// @Tags products
// @Produce json
// @Success 200 {object} InventoryValueResponse
// @Security ApiKeyAuth
// @Router /products/inventory-value [get]
func (h *Handler) InventoryValueHandler(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.TotalInventoryValue(r.Context())
	h.handleServiceResponse(w, r, InventoryValueResponse{TotalValue: money.NewAmount(total)}, err, http.StatusOK)
}

// LowStockHandler lida com a requisição GET /v1/products/low-stock.
// @Summary Produtos com estoque baixo
// @Tags products
// @Produce json
// @Param threshold query int false "Limite (padrão 10)"
// @Success 200 {array} domain.Product
// @Security ApiKeyAuth
// @Router /products/low-stock [get]
func (h *Handler) LowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold, err := params.OptionalInt(r, "threshold")
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	products, err := h.Service.LowStock(r.Context(), threshold)
	h.handleServiceResponse(w, r, products, err, http.StatusOK)
}
