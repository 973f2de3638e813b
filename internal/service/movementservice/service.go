package movementservice

import (
	"context"
	"fmt"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
)

// MovementRepository define o contrato que o Serviço de Movimentações espera da persistência.
// Record deve gravar a movimentação e ajustar o produto de forma atômica.
type MovementRepository interface {
	Record(ctx context.Context, req domain.MovementRequest) (domain.MovementResult, error)
	FindByID(ctx context.Context, id int64) (domain.StockMovement, error)
	FindAll(ctx context.Context, filter domain.MovementFilter) ([]domain.StockMovement, error)
}

type Service struct {
	repo   MovementRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Movimentações.
func NewService(repo MovementRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// RecordMovement valida e registra uma entrada ou saída de estoque.
// Nada é gravado quando a validação falha.
func (s *Service) RecordMovement(ctx context.Context, req domain.MovementRequest) (domain.MovementResult, error) {
	if req.Quantity < 1 {
		return domain.MovementResult{}, apperror.NewValidationError("A quantidade da movimentação deve ser maior ou igual a 1.")
	}
	if req.Quantity > domain.MaxQuantity {
		return domain.MovementResult{}, apperror.NewValidationError(fmt.Sprintf("A quantidade da movimentação não pode passar de %d.", domain.MaxQuantity))
	}
	if !req.Type.Valid() {
		return domain.MovementResult{}, apperror.NewValidationError("O tipo da movimentação deve ser 'entrada' ou 'saida'.")
	}
	if req.ProductID <= 0 {
		return domain.MovementResult{}, apperror.NewValidationError("O ID do produto deve ser um inteiro positivo.")
	}

	result, err := s.repo.Record(ctx, req)
	if err != nil {
		s.logger.Error("Falha ao registrar movimentação no repositório.", err)
		return domain.MovementResult{}, err
	}

	if !result.ProductAdjusted {
		s.logger.Warn("Movimentação sem ajuste de quantidade: produto não encontrado.", map[string]interface{}{
			"movement_id": result.ID,
			"product_id":  req.ProductID,
		})
	}
	return result, nil
}

func (s *Service) GetMovementByID(ctx context.Context, id int64) (domain.StockMovement, error) {
	if id <= 0 {
		return domain.StockMovement{}, apperror.NewValidationError("O ID da movimentação deve ser um inteiro positivo.")
	}
	return s.repo.FindByID(ctx, id)
}

// ListMovements lista movimentações, mais recentes primeiro.
func (s *Service) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.StockMovement, error) {
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return nil, apperror.NewValidationError("A data final deve ser posterior à data inicial.")
	}
	return s.repo.FindAll(ctx, filter)
}
