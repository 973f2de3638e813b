package cashservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
	"gestao/internal/service/cashservice"
)

// MockTransactionRepository é uma implementação mock da interface TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Save(ctx context.Context, t domain.FinancialTransaction) (domain.FinancialTransaction, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(domain.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (domain.FinancialTransaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.FinancialTransaction), args.Error(1)
}

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newService(repo *MockTransactionRepository) *cashservice.Service {
	return cashservice.NewService(repo, time.UTC, logger.NewNop()).WithClock(func() time.Time { return fixedNow })
}

func TestCreateTransaction_DefaultsDateToNow(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := newService(mockRepo)

	expected := domain.FinancialTransaction{Type: domain.Entrada, Category: "Vendas", Value: 100000, Date: fixedNow}
	mockRepo.On("Save", mock.Anything, expected).Return(domain.FinancialTransaction{
		ID: 1, Type: domain.Entrada, Category: "Vendas", Value: 100000, Date: fixedNow,
	}, nil)

	created, err := svc.CreateTransaction(context.Background(), domain.TransactionRequest{
		Type: domain.Entrada, Category: "Vendas", Value: 100000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, fixedNow, created.Date)
	mockRepo.AssertExpectations(t)
}

func TestCreateTransaction_Validation(t *testing.T) {
	cases := map[string]domain.TransactionRequest{
		"tipo inválido":  {Type: "estorno", Category: "X", Value: 10},
		"sem categoria":  {Type: domain.Saida, Category: "  ", Value: 10},
		"valor zero":     {Type: domain.Saida, Category: "X", Value: 0},
		"valor negativo": {Type: domain.Entrada, Category: "X", Value: -5},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			svc := newService(mockRepo)

			_, err := svc.CreateTransaction(context.Background(), req)

			var validation *apperror.ValidationError
			require.ErrorAs(t, err, &validation)
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestCurrentBalance(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindAll", mock.Anything, domain.TransactionFilter{}).Return([]domain.FinancialTransaction{
		{Type: domain.Entrada, Value: 100000},
		{Type: domain.Saida, Value: 30000},
	}, nil)

	balance, err := svc.CurrentBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(70000), balance)
}

func TestMonthlyBalance_PushesHalfOpenWindow(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := newService(mockRepo)

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.TransactionFilter{Start: &start, End: &end, EndExclusive: true}

	mockRepo.On("FindAll", mock.Anything, filter).Return([]domain.FinancialTransaction{
		{Type: domain.Entrada, Value: 5000, Date: time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)},
		{Type: domain.Saida, Value: 2000, Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		// o filtro em Go descarta qualquer linha fora da janela
		{Type: domain.Entrada, Value: 9999, Date: end},
	}, nil)

	summary, err := svc.MonthlyBalance(context.Background(), 2024, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.BalanceSummary{Entrada: 5000, Saida: 2000, Balance: 3000}, summary)
	mockRepo.AssertExpectations(t)
}

func TestMonthlyBalance_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		mockRepo := new(MockTransactionRepository)
		svc := newService(mockRepo)

		_, err := svc.MonthlyBalance(context.Background(), 2024, month)

		var validation *apperror.ValidationError
		assert.ErrorAs(t, err, &validation, "mês %d", month)
		mockRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	}
}

func TestCurrentMonthBalance_UsesClock(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Start != nil && f.Start.Month() == time.March && f.Start.Year() == 2024 && f.EndExclusive
	})).Return([]domain.FinancialTransaction{}, nil)

	summary, err := svc.CurrentMonthBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.BalanceSummary{}, summary)
	mockRepo.AssertExpectations(t)
}

func TestListTransactions_InvalidRange(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := newService(mockRepo)

	start := fixedNow
	end := fixedNow.Add(-24 * time.Hour)

	_, err := svc.ListTransactions(context.Background(), &start, &end)

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
}
