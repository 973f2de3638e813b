package movement_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gestao/internal/api/movement"
	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
)

type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) RecordMovement(ctx context.Context, req domain.MovementRequest) (domain.MovementResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.MovementResult), args.Error(1)
}

func (m *MockMovementService) GetMovementByID(ctx context.Context, id int64) (domain.StockMovement, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.StockMovement), args.Error(1)
}

func (m *MockMovementService) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.StockMovement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func newRouter(svc *MockMovementService) *mux.Router {
	h := movement.NewHandler(svc, time.UTC, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/v1/movements", h.RecordMovementHandler).Methods(http.MethodPost)
	r.HandleFunc("/v1/movements", h.ListMovementsHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/movements/{id:[0-9]+}", h.GetMovementByIDHandler).Methods(http.MethodGet)
	return r
}

func TestRecordMovementHandler(t *testing.T) {
	svc := new(MockMovementService)
	newQty := 6
	svc.On("RecordMovement", mock.Anything, domain.MovementRequest{ProductID: 7, Type: domain.Saida, Quantity: 4}).
		Return(domain.MovementResult{
			StockMovement:   domain.StockMovement{ID: 1, ProductID: 7, Type: domain.Saida, Quantity: 4},
			ProductAdjusted: true,
			NewQuantity:     &newQty,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/movements", strings.NewReader(`{"product_id":7,"type":"saida","quantity":4}`))
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, true, got["product_adjusted"])
	assert.Equal(t, float64(6), got["new_quantity"])
}

func TestRecordMovementHandler_ValidationIs400(t *testing.T) {
	svc := new(MockMovementService)
	svc.On("RecordMovement", mock.Anything, mock.Anything).
		Return(domain.MovementResult{}, apperror.NewValidationError("A quantidade da movimentação deve ser maior ou igual a 1."))

	req := httptest.NewRequest(http.MethodPost, "/v1/movements", strings.NewReader(`{"product_id":7,"type":"saida","quantity":0}`))
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMovementsHandler_ProductFilter(t *testing.T) {
	svc := new(MockMovementService)
	svc.On("ListMovements", mock.Anything, mock.MatchedBy(func(f domain.MovementFilter) bool {
		return f.ProductID != nil && *f.ProductID == 3 && f.Start == nil && f.End == nil
	})).Return([]domain.StockMovement{{ID: 2, ProductID: 3}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/movements?product_id=3", nil)
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestListMovementsHandler_BadDate(t *testing.T) {
	svc := new(MockMovementService)

	req := httptest.NewRequest(http.MethodGet, "/v1/movements?start=ontem", nil)
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
