package movementrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gestao/internal/domain"
	"gestao/internal/errors"
	"gestao/internal/pkg/cache"
	"gestao/internal/pkg/database"
	"gestao/internal/pkg/logger"
)

const movementColumns = `id, product_id, type, quantity, date, observation, created_at`

// MovementRepository grava o log de movimentações e aplica o delta na quantidade do produto.
type MovementRepository struct {
	Conn      database.Conn
	Cache     cache.Client
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewMovementRepository cria e retorna uma nova instância do Repositório de Movimentações.
func NewMovementRepository(conn database.Conn, cacheClient cache.Client, dbTimeout time.Duration, log logger.Logger) *MovementRepository {
	return &MovementRepository{
		Conn:      conn,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMovement(row scanner) (domain.StockMovement, error) {
	var m domain.StockMovement
	var observation sql.NullString
	err := row.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &observation, &m.CreatedAt)
	if observation.Valid {
		m.Observation = &observation.String
	}
	return m, err
}

// Record insere a movimentação e ajusta a quantidade do produto na mesma transação.
// O incremento é feito pelo próprio banco, então registros concorrentes nunca perdem atualização.
// Se o produto não existir a movimentação é mantida e ProductAdjusted volta false.
func (r *MovementRepository) Record(ctx context.Context, req domain.MovementRequest) (domain.MovementResult, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.MovementResult{}, err
	}

	tx, err := db.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação para movimentação.", err)
		return domain.MovementResult{}, database.Classify("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	queryInsert := `
        INSERT INTO stock_movements (product_id, type, quantity, date, observation)
        VALUES ($1, $2, $3, NOW(), $4)
        RETURNING ` + movementColumns

	movement, err := scanMovement(tx.QueryRowContext(ctxTimeout, queryInsert,
		req.ProductID, req.Type, req.Quantity, req.Observation,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir movimentação.", err)
		return domain.MovementResult{}, database.Classify("Falha ao inserir movimentação", err)
	}

	result := domain.MovementResult{StockMovement: movement}

	queryUpdate := `
        UPDATE products
        SET quantity = quantity + $1, updated_at = NOW()
        WHERE id = $2
        RETURNING quantity`

	var newQuantity int
	err = tx.QueryRowContext(ctxTimeout, queryUpdate, movement.Delta(), req.ProductID).Scan(&newQuantity)
	switch {
	case err == sql.ErrNoRows:
		r.logger.Warn("Movimentação registrada para produto inexistente; quantidade não ajustada.", map[string]interface{}{
			"movement_id": movement.ID,
			"product_id":  req.ProductID,
		})
	case err != nil:
		r.logger.Error("Falha ao ajustar quantidade do produto.", err)
		return domain.MovementResult{}, database.Classify("Falha ao ajustar quantidade do produto", err)
	default:
		result.ProductAdjusted = true
		result.NewQuantity = &newQuantity
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de movimentação.", err)
		return domain.MovementResult{}, database.Classify("Falha ao commitar transação", err)
	}

	if result.ProductAdjusted && r.Cache != nil {
		if err := r.Cache.Delete(ctxTimeout, cache.ProductKey(req.ProductID)); err != nil {
			r.logger.Warn("Falha ao invalidar cache do produto após movimentação.", map[string]interface{}{"product_id": req.ProductID, "error": err.Error()})
		}
	}

	r.logger.Info("Movimentação registrada.", map[string]interface{}{
		"movement_id":      movement.ID,
		"product_id":       req.ProductID,
		"delta":            movement.Delta(),
		"product_adjusted": result.ProductAdjusted,
	})
	return result, nil
}

// FindByID busca uma movimentação pelo ID.
func (r *MovementRepository) FindByID(ctx context.Context, id int64) (domain.StockMovement, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.StockMovement{}, err
	}

	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	movement, err := scanMovement(db.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.StockMovement{}, errors.NewNotFoundError(fmt.Sprintf("Movimentação com ID %d não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar movimentação no DB.", err)
		return domain.StockMovement{}, database.Classify("Falha ao buscar movimentação", err)
	}
	return movement, nil
}

// FindAll lista movimentações, mais recentes primeiro, aplicando os filtros informados.
func (r *MovementRepository) FindAll(ctx context.Context, filter domain.MovementFilter) ([]domain.StockMovement, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return nil, err
	}

	var conditions []string
	var args []interface{}
	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT ` + movementColumns + ` FROM stock_movements`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := db.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar movimentações.", err)
		return nil, database.Classify("Falha ao listar movimentações", err)
	}
	defer rows.Close()

	movements := make([]domain.StockMovement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear movimentação.", err)
			return nil, database.Classify("Falha ao mapear movimentações do DB", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Classify("Erro após iteração de movimentações", err)
	}

	return movements, nil
}
