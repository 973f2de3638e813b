package productrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gestao/internal/domain"
	"gestao/internal/errors"
	"gestao/internal/pkg/cache"
	"gestao/internal/pkg/database"
	"gestao/internal/pkg/logger"
)

const productColumns = `id, name, category, quantity, purchase_price, sale_price, created_at, updated_at`

// ProductRepository persiste produtos no PostgreSQL com cache-aside no Redis para leituras por ID.
type ProductRepository struct {
	Conn      database.Conn
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
// cacheClient pode ser nil: nesse caso o cache é ignorado.
func NewProductRepository(conn database.Conn, cacheClient cache.Client, dbTimeout time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		Conn:      conn,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  5 * time.Minute,
		logger:    log,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Quantity,
		&p.PurchasePrice,
		&p.SalePrice,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Save insere um novo produto e devolve a linha com ID e timestamps gerados.
func (r *ProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.Product{}, err
	}

	query := `
        INSERT INTO products (name, category, quantity, purchase_price, sale_price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + productColumns

	created, err := scanProduct(db.QueryRowContext(ctxTimeout, query,
		product.Name,
		product.Category,
		product.Quantity,
		product.PurchasePrice,
		product.SalePrice,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, database.Classify("Falha ao inserir produto", err)
	}

	r.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return created, nil
}

// FindByID busca um produto pelo ID, utilizando a estratégia Cache-Aside.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := cache.ProductKey(id)

	if r.Cache != nil {
		cachedData, err := r.Cache.Get(ctxTimeout, key)
		if err == nil {
			var product domain.Product
			if json.Unmarshal([]byte(cachedData), &product) == nil {
				return product, nil
			}
			r.logger.Warn("Entrada de cache de produto corrompida.", map[string]interface{}{"key": key})
		} else if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.Product{}, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(db.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.Product{}, errors.NewNotFoundError(fmt.Sprintf("Produto com ID %d não existe na base de dados.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, database.Classify("Falha ao buscar produto", err)
	}

	if r.Cache != nil {
		if productJSON, marshalErr := json.Marshal(product); marshalErr == nil {
			if setErr := r.Cache.Set(ctxTimeout, key, productJSON, r.CacheTTL); setErr != nil {
				r.logger.Warn("Falha ao gravar produto no cache.", map[string]interface{}{"key": key, "error": setErr.Error()})
			}
		}
	}

	return product, nil
}

// FindAll lista todos os produtos, mais recentes primeiro.
// Leituras de agregação passam sempre por aqui, nunca pelo cache.
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`

	rows, err := db.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar listagem de produtos.", err)
		return nil, database.Classify("Falha ao listar produtos", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear produto na listagem.", err)
			return nil, database.Classify("Falha ao mapear produtos do DB", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de produtos.", err)
		return nil, database.Classify("Erro após iteração de produtos", err)
	}

	r.logger.Debug("Listagem de produtos concluída.", map[string]interface{}{"total": len(products)})
	return products, nil
}

// Update aplica uma atualização parcial; campos nil mantêm o valor atual.
func (r *ProductRepository) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.Product{}, err
	}

	query := `
        UPDATE products
        SET name = COALESCE($1, name),
            category = COALESCE($2, category),
            quantity = COALESCE($3, quantity),
            purchase_price = COALESCE($4, purchase_price),
            sale_price = COALESCE($5, sale_price),
            updated_at = NOW()
        WHERE id = $6
        RETURNING ` + productColumns

	updated, err := scanProduct(db.QueryRowContext(ctxTimeout, query,
		upd.Name, upd.Category, upd.Quantity, upd.PurchasePrice, upd.SalePrice, id,
	))
	if err == sql.ErrNoRows {
		return domain.Product{}, errors.NewNotFoundError(fmt.Sprintf("Produto com ID %d não encontrado para atualização.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return domain.Product{}, database.Classify("Falha ao atualizar produto", err)
	}

	r.invalidate(ctxTimeout, id)
	r.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete remove o produto e informa se alguma linha foi apagada.
// Movimentações que referenciam o produto permanecem no log.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return false, err
	}

	result, err := db.ExecContext(ctxTimeout, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar produto do DB.", err)
		return false, database.Classify("Falha ao deletar produto", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, database.Classify("Falha ao verificar linhas afetadas", err)
	}

	r.invalidate(ctxTimeout, id)
	return rowsAffected > 0, nil
}

func (r *ProductRepository) invalidate(ctx context.Context, id int64) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.Delete(ctx, cache.ProductKey(id)); err != nil {
		r.logger.Warn("Falha ao invalidar cache do produto.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
