package cashservice

import (
	"context"
	"strings"
	"time"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
)

// TransactionRepository define o contrato que o Serviço de Caixa espera da camada de Persistência.
type TransactionRepository interface {
	Save(ctx context.Context, t domain.FinancialTransaction) (domain.FinancialTransaction, error)
	FindByID(ctx context.Context, id int64) (domain.FinancialTransaction, error)
	FindAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, error)
}

// Service registra lançamentos e calcula saldos do fluxo de caixa.
type Service struct {
	repo     TransactionRepository
	location *time.Location
	now      func() time.Time
	logger   logger.Logger
}

// NewService cria o Serviço de Caixa. loc define onde começa e termina cada mês;
// nil usa o fuso local do servidor.
func NewService(repo TransactionRepository, loc *time.Location, log logger.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, location: loc, now: time.Now, logger: log}
}

// WithClock troca o relógio usado para a data padrão dos lançamentos e o mês corrente.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateTransaction valida e registra um lançamento. Sem data, usa o instante atual.
func (s *Service) CreateTransaction(ctx context.Context, req domain.TransactionRequest) (domain.FinancialTransaction, error) {
	if !req.Type.Valid() {
		return domain.FinancialTransaction{}, apperror.NewValidationError("O tipo do lançamento deve ser 'entrada' ou 'saida'.")
	}
	if strings.TrimSpace(req.Category) == "" {
		return domain.FinancialTransaction{}, apperror.NewValidationError("A categoria do lançamento é obrigatória.")
	}
	if req.Value < 1 {
		return domain.FinancialTransaction{}, apperror.NewValidationError("O valor do lançamento deve ser de pelo menos 1 centavo.")
	}

	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}

	t := domain.FinancialTransaction{
		Type:        req.Type,
		Category:    strings.TrimSpace(req.Category),
		Value:       req.Value,
		Date:        date,
		Description: req.Description,
	}

	created, err := s.repo.Save(ctx, t)
	if err != nil {
		s.logger.Error("Falha ao registrar lançamento no repositório.", err)
		return domain.FinancialTransaction{}, err
	}
	return created, nil
}

func (s *Service) GetTransactionByID(ctx context.Context, id int64) (domain.FinancialTransaction, error) {
	if id <= 0 {
		return domain.FinancialTransaction{}, apperror.NewValidationError("O ID do lançamento deve ser um inteiro positivo.")
	}
	return s.repo.FindByID(ctx, id)
}

// ListTransactions lista lançamentos, mais recentes primeiro. start e end são inclusivos.
func (s *Service) ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.FinancialTransaction, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, apperror.NewValidationError("A data final deve ser posterior à data inicial.")
	}
	return s.repo.FindAll(ctx, domain.TransactionFilter{Start: start, End: end})
}

// CurrentBalance é o total de entradas menos o total de saídas de todo o histórico.
func (s *Service) CurrentBalance(ctx context.Context) (int64, error) {
	transactions, err := s.repo.FindAll(ctx, domain.TransactionFilter{})
	if err != nil {
		return 0, err
	}
	return domain.CurrentBalance(transactions), nil
}

// MonthlyBalance resume entradas e saídas do mês informado (1 a 12).
func (s *Service) MonthlyBalance(ctx context.Context, year, month int) (domain.BalanceSummary, error) {
	if month < 1 || month > 12 {
		return domain.BalanceSummary{}, apperror.NewValidationError("O mês deve estar entre 1 e 12.")
	}
	if year < 1 {
		return domain.BalanceSummary{}, apperror.NewValidationError("O ano informado é inválido.")
	}

	w := domain.NewMonthWindow(year, time.Month(month), s.location)
	transactions, err := s.repo.FindAll(ctx, domain.TransactionFilter{
		Start:        &w.Start,
		End:          &w.End,
		EndExclusive: true,
	})
	if err != nil {
		return domain.BalanceSummary{}, err
	}

	summary := domain.MonthlyBalance(transactions, w)
	s.logger.Debug("Saldo mensal calculado.", map[string]interface{}{
		"year":    year,
		"month":   month,
		"balance": summary.Balance,
	})
	return summary, nil
}

// CurrentMonthBalance é o MonthlyBalance do mês corrente no fuso configurado.
func (s *Service) CurrentMonthBalance(ctx context.Context) (domain.BalanceSummary, error) {
	now := s.now().In(s.location)
	return s.MonthlyBalance(ctx, now.Year(), int(now.Month()))
}
