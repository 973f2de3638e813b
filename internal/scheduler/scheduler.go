package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"gestao/internal/domain"
	"gestao/internal/pkg/logger"
)

// LowStockSource é a consulta de estoque baixo usada pelo alerta.
type LowStockSource interface {
	LowStock(ctx context.Context, threshold *int) ([]domain.Product, error)
}

// Scheduler executa tarefas periódicas da aplicação.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	inventory LowStockSource
	timeout   time.Duration
	logger    logger.Logger
}

// NewScheduler cria o agendador. spec é uma expressão cron de 5 campos avaliada em loc.
func NewScheduler(spec string, loc *time.Location, inventory LowStockSource, log logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		spec:      spec,
		inventory: inventory,
		timeout:   time.Minute,
		logger:    log,
	}
}

// Start registra o alerta de estoque baixo e inicia o cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.CheckLowStock); err != nil {
		return err
	}
	s.logger.Info("Agendador iniciado.", map[string]interface{}{"low_stock_cron": s.spec})
	s.cron.Start()
	return nil
}

// Stop interrompe o cron e aguarda a tarefa em execução terminar.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Agendador encerrado.", nil)
}

// CheckLowStock loga um WARN com os produtos em estoque baixo.
func (s *Scheduler) CheckLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	products, err := s.inventory.LowStock(ctx, nil)
	if err != nil {
		s.logger.Error("Falha ao verificar estoque baixo.", err)
		return
	}
	if len(products) == 0 {
		s.logger.Debug("Nenhum produto com estoque baixo.", nil)
		return
	}

	items := make([]map[string]interface{}, 0, len(products))
	for _, p := range products {
		items = append(items, map[string]interface{}{"id": p.ID, "name": p.Name, "quantity": p.Quantity})
	}
	s.logger.Warn("Produtos com estoque baixo.", map[string]interface{}{
		"total":    len(products),
		"products": items,
	})
}
