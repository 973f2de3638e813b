package dashboardservice

import (
	"context"

	"gestao/internal/domain"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/money"
)

// InventoryAggregator é o subconjunto do Serviço de Produto usado pelo painel.
type InventoryAggregator interface {
	TotalInventoryValue(ctx context.Context) (int64, error)
	LowStock(ctx context.Context, threshold *int) ([]domain.Product, error)
	LowStockThreshold() int
}

// CashAggregator é o subconjunto do Serviço de Caixa usado pelo painel.
type CashAggregator interface {
	CurrentBalance(ctx context.Context) (int64, error)
	CurrentMonthBalance(ctx context.Context) (domain.BalanceSummary, error)
}

// MonthlySummary é o BalanceSummary com valores formatados.
type MonthlySummary struct {
	Entrada money.Amount `json:"entrada"`
	Saida   money.Amount `json:"saida"`
	Balance money.Amount `json:"balance"`
}

// Summary é a resposta do painel.
type Summary struct {
	CurrentBalance    money.Amount     `json:"current_balance"`
	InventoryValue    money.Amount     `json:"inventory_value"`
	CurrentMonth      MonthlySummary   `json:"current_month"`
	LowStockThreshold int              `json:"low_stock_threshold"`
	LowStockProducts  []domain.Product `json:"low_stock_products"`
}

type Service struct {
	inventory InventoryAggregator
	cash      CashAggregator
	logger    logger.Logger
}

func NewService(inventory InventoryAggregator, cash CashAggregator, log logger.Logger) *Service {
	return &Service{inventory: inventory, cash: cash, logger: log}
}

// Summary calcula todos os indicadores do painel. Qualquer falha interrompe a montagem.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	balance, err := s.cash.CurrentBalance(ctx)
	if err != nil {
		return Summary{}, err
	}

	inventoryValue, err := s.inventory.TotalInventoryValue(ctx)
	if err != nil {
		return Summary{}, err
	}

	month, err := s.cash.CurrentMonthBalance(ctx)
	if err != nil {
		return Summary{}, err
	}

	low, err := s.inventory.LowStock(ctx, nil)
	if err != nil {
		return Summary{}, err
	}

	s.logger.Debug("Painel calculado.", map[string]interface{}{"low_stock": len(low)})

	return Summary{
		CurrentBalance: money.NewAmount(balance),
		InventoryValue: money.NewAmount(inventoryValue),
		CurrentMonth: MonthlySummary{
			Entrada: money.NewAmount(month.Entrada),
			Saida:   money.NewAmount(month.Saida),
			Balance: money.NewAmount(month.Balance),
		},
		LowStockThreshold: s.inventory.LowStockThreshold(),
		LowStockProducts:  low,
	}, nil
}
