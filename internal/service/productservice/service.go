package productservice

import (
	"context"
	"fmt"
	"strings"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
)

// ProductRepository define o contrato que este Serviço espera da camada de persistência.
type ProductRepository interface {
	Save(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service concentra as regras de produto e o agregador de inventário.
type Service struct {
	repo              ProductRepository
	lowStockThreshold int
	logger            logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
// lowStockThreshold é o limite usado quando o chamador não informa um.
func NewService(repo ProductRepository, lowStockThreshold int, log logger.Logger) *Service {
	if lowStockThreshold < 0 {
		lowStockThreshold = domain.DefaultLowStockThreshold
	}
	return &Service{repo: repo, lowStockThreshold: lowStockThreshold, logger: log}
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" {
		return apperror.NewValidationError("Nome e categoria são obrigatórios para o produto.")
	}
	if p.Quantity < 0 {
		return apperror.NewValidationError("A quantidade inicial não pode ser negativa.")
	}
	if p.Quantity > domain.MaxQuantity {
		return apperror.NewValidationError(fmt.Sprintf("A quantidade não pode passar de %d.", domain.MaxQuantity))
	}
	if p.PurchasePrice < 0 || p.SalePrice < 0 {
		return apperror.NewValidationError("Os preços não podem ser negativos.")
	}
	return nil
}

// CreateProduct valida e persiste um novo produto.
func (s *Service) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := validateProduct(product); err != nil {
		s.logger.Info("Produto rejeitado na validação.", map[string]interface{}{"name": product.Name, "reason": err.Error()})
		return domain.Product{}, err
	}

	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)

	created, err := s.repo.Save(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("falha ao salvar produto no repositório: %w", err)
	}
	return created, nil
}

func (s *Service) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, apperror.NewValidationError("O ID do produto deve ser um inteiro positivo.")
	}
	return s.repo.FindByID(ctx, id)
}

// ListProducts devolve todos os produtos, mais recentes primeiro.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// UpdateProduct aplica uma atualização parcial.
func (s *Service) UpdateProduct(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, apperror.NewValidationError("O ID do produto deve ser um inteiro positivo.")
	}
	if upd.IsEmpty() {
		return domain.Product{}, apperror.NewValidationError("Nenhum campo informado para atualização.")
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return domain.Product{}, apperror.NewValidationError("O nome do produto não pode ficar vazio.")
	}
	if upd.Category != nil && strings.TrimSpace(*upd.Category) == "" {
		return domain.Product{}, apperror.NewValidationError("A categoria do produto não pode ficar vazia.")
	}
	if upd.Quantity != nil && (*upd.Quantity > domain.MaxQuantity || *upd.Quantity < -domain.MaxQuantity) {
		return domain.Product{}, apperror.NewValidationError(fmt.Sprintf("A quantidade deve estar entre -%d e %d.", domain.MaxQuantity, domain.MaxQuantity))
	}
	if (upd.PurchasePrice != nil && *upd.PurchasePrice < 0) || (upd.SalePrice != nil && *upd.SalePrice < 0) {
		return domain.Product{}, apperror.NewValidationError("Os preços não podem ser negativos.")
	}

	return s.repo.Update(ctx, id, upd)
}

// DeleteProduct remove o produto. As movimentações do produto continuam no log.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewValidationError("O ID do produto deve ser um inteiro positivo.")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não foi encontrado.", id))
	}

	s.logger.Info("Produto removido.", map[string]interface{}{"id": id})
	return nil
}

// TotalInventoryValue soma quantidade * preço de compra de todos os produtos, em centavos.
func (s *Service) TotalInventoryValue(ctx context.Context) (int64, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return domain.TotalInventoryValue(products), nil
}

// LowStock devolve os produtos com quantidade <= threshold.
// Com threshold nil usa o limite configurado.
func (s *Service) LowStock(ctx context.Context, threshold *int) ([]domain.Product, error) {
	limit := s.lowStockThreshold
	if threshold != nil {
		limit = *threshold
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	low := domain.FilterLowStock(products, limit)
	s.logger.Debug("Consulta de estoque baixo.", map[string]interface{}{"threshold": limit, "total": len(low)})
	return low, nil
}

// LowStockThreshold é o limite padrão em uso.
func (s *Service) LowStockThreshold() int {
	return s.lowStockThreshold
}
