package dashboardservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
	"gestao/internal/service/dashboardservice"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) TotalInventoryValue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventory) LowStock(ctx context.Context, threshold *int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockInventory) LowStockThreshold() int {
	return m.Called().Int(0)
}

type MockCash struct {
	mock.Mock
}

func (m *MockCash) CurrentBalance(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCash) CurrentMonthBalance(ctx context.Context) (domain.BalanceSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BalanceSummary), args.Error(1)
}

func TestSummary(t *testing.T) {
	inventory := new(MockInventory)
	cash := new(MockCash)
	svc := dashboardservice.NewService(inventory, cash, logger.NewNop())

	low := []domain.Product{{ID: 4, Name: "Papel A4", Quantity: 2}}
	cash.On("CurrentBalance", mock.Anything).Return(int64(70000), nil)
	cash.On("CurrentMonthBalance", mock.Anything).Return(domain.BalanceSummary{Entrada: 123456, Saida: 3456, Balance: 120000}, nil)
	inventory.On("TotalInventoryValue", mock.Anything).Return(int64(20000), nil)
	inventory.On("LowStock", mock.Anything, (*int)(nil)).Return(low, nil)
	inventory.On("LowStockThreshold").Return(10)

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(70000), summary.CurrentBalance.Cents)
	assert.Equal(t, "R$ 700,00", summary.CurrentBalance.Display)
	assert.Equal(t, "R$ 200,00", summary.InventoryValue.Display)
	assert.Equal(t, "R$ 1.234,56", summary.CurrentMonth.Entrada.Display)
	assert.Equal(t, int64(120000), summary.CurrentMonth.Balance.Cents)
	assert.Equal(t, 10, summary.LowStockThreshold)
	assert.Equal(t, low, summary.LowStockProducts)
}

func TestSummary_StopsOnUnavailable(t *testing.T) {
	inventory := new(MockInventory)
	cash := new(MockCash)
	svc := dashboardservice.NewService(inventory, cash, logger.NewNop())

	cash.On("CurrentBalance", mock.Anything).
		Return(int64(0), apperror.NewUnavailableError("falha ao conectar ao banco de dados", errors.New("connection refused")))

	_, err := svc.Summary(context.Background())

	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 503, status)
	inventory.AssertNotCalled(t, "TotalInventoryValue", mock.Anything)
}
