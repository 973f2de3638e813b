package movementservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
	"gestao/internal/service/movementservice"
)

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Record(ctx context.Context, req domain.MovementRequest) (domain.MovementResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.MovementResult), args.Error(1)
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id int64) (domain.StockMovement, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) FindAll(ctx context.Context, filter domain.MovementFilter) ([]domain.StockMovement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func TestRecordMovement_Success(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	svc := movementservice.NewService(mockRepo, logger.NewNop())

	req := domain.MovementRequest{ProductID: 7, Type: domain.Saida, Quantity: 4}
	newQty := 6
	expected := domain.MovementResult{
		StockMovement:   domain.StockMovement{ID: 1, ProductID: 7, Type: domain.Saida, Quantity: 4, Date: time.Now()},
		ProductAdjusted: true,
		NewQuantity:     &newQty,
	}
	mockRepo.On("Record", mock.Anything, req).Return(expected, nil)

	result, err := svc.RecordMovement(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, 6, *result.NewQuantity)
	mockRepo.AssertExpectations(t)
}

func TestRecordMovement_ProductMissingStillRecorded(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	svc := movementservice.NewService(mockRepo, logger.NewNop())

	req := domain.MovementRequest{ProductID: 404, Type: domain.Entrada, Quantity: 1}
	mockRepo.On("Record", mock.Anything, req).Return(domain.MovementResult{
		StockMovement: domain.StockMovement{ID: 2, ProductID: 404, Type: domain.Entrada, Quantity: 1},
	}, nil)

	result, err := svc.RecordMovement(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.ID)
	assert.False(t, result.ProductAdjusted)
	assert.Nil(t, result.NewQuantity)
}

func TestRecordMovement_ValidationWritesNothing(t *testing.T) {
	cases := map[string]domain.MovementRequest{
		"quantidade zero":     {ProductID: 1, Type: domain.Entrada, Quantity: 0},
		"quantidade negativa": {ProductID: 1, Type: domain.Saida, Quantity: -3},
		"acima do limite INT": {ProductID: 1, Type: domain.Entrada, Quantity: domain.MaxQuantity + 1},
		"tipo inválido":       {ProductID: 1, Type: "ajuste", Quantity: 2},
		"produto inválido":    {ProductID: 0, Type: domain.Entrada, Quantity: 2},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockMovementRepository)
			svc := movementservice.NewService(mockRepo, logger.NewNop())

			_, err := svc.RecordMovement(context.Background(), req)

			var validation *apperror.ValidationError
			require.ErrorAs(t, err, &validation)
			mockRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		})
	}
}

func TestRecordMovement_AcceptsIntColumnLimit(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	svc := movementservice.NewService(mockRepo, logger.NewNop())

	req := domain.MovementRequest{ProductID: 1, Type: domain.Entrada, Quantity: domain.MaxQuantity}
	mockRepo.On("Record", mock.Anything, req).
		Return(domain.MovementResult{StockMovement: domain.StockMovement{ID: 1, ProductID: 1, Type: domain.Entrada, Quantity: domain.MaxQuantity}}, nil)

	_, err := svc.RecordMovement(context.Background(), req)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordMovement_RepoErrorPropagates(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	svc := movementservice.NewService(mockRepo, logger.NewNop())

	req := domain.MovementRequest{ProductID: 1, Type: domain.Entrada, Quantity: 1}
	mockRepo.On("Record", mock.Anything, req).
		Return(domain.MovementResult{}, apperror.NewUnavailableError("banco de dados não configurado", errors.New("sem DSN")))

	_, err := svc.RecordMovement(context.Background(), req)

	var unavailable *apperror.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestListMovements_InvalidRange(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	svc := movementservice.NewService(mockRepo, logger.NewNop())

	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := svc.ListMovements(context.Background(), domain.MovementFilter{Start: &start, End: &end})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestListMovements_ByProduct(t *testing.T) {
	mockRepo := new(MockMovementRepository)
	svc := movementservice.NewService(mockRepo, logger.NewNop())

	productID := int64(3)
	filter := domain.MovementFilter{ProductID: &productID}
	expected := []domain.StockMovement{{ID: 2, ProductID: 3}, {ID: 1, ProductID: 3}}
	mockRepo.On("FindAll", mock.Anything, filter).Return(expected, nil)

	movements, err := svc.ListMovements(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, expected, movements)
}
