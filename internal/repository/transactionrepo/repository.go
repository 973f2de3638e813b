package transactionrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gestao/internal/domain"
	"gestao/internal/errors"
	"gestao/internal/pkg/database"
	"gestao/internal/pkg/logger"
)

const transactionColumns = `id, type, category, value, date, description, created_at`

// TransactionRepository persiste os lançamentos do fluxo de caixa.
type TransactionRepository struct {
	Conn      database.Conn
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewTransactionRepository(conn database.Conn, dbTimeout time.Duration, log logger.Logger) *TransactionRepository {
	return &TransactionRepository{
		Conn:      conn,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (domain.FinancialTransaction, error) {
	var t domain.FinancialTransaction
	var description sql.NullString
	err := row.Scan(&t.ID, &t.Type, &t.Category, &t.Value, &t.Date, &description, &t.CreatedAt)
	if description.Valid {
		t.Description = &description.String
	}
	return t, err
}

// Save insere um lançamento. A data já vem resolvida pelo serviço.
func (r *TransactionRepository) Save(ctx context.Context, t domain.FinancialTransaction) (domain.FinancialTransaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.FinancialTransaction{}, err
	}

	query := `
        INSERT INTO financial_transactions (type, category, value, date, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + transactionColumns

	created, err := scanTransaction(db.QueryRowContext(ctxTimeout, query,
		t.Type, t.Category, t.Value, t.Date, t.Description,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir lançamento financeiro.", err)
		return domain.FinancialTransaction{}, database.Classify("Falha ao inserir lançamento", err)
	}

	r.logger.Info("Lançamento financeiro registrado.", map[string]interface{}{
		"id":    created.ID,
		"type":  created.Type,
		"value": created.Value,
	})
	return created, nil
}

// FindByID busca um lançamento pelo ID.
func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (domain.FinancialTransaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.FinancialTransaction{}, err
	}

	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE id = $1`
	t, err := scanTransaction(db.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.FinancialTransaction{}, errors.NewNotFoundError(fmt.Sprintf("Lançamento com ID %d não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar lançamento no DB.", err)
		return domain.FinancialTransaction{}, database.Classify("Falha ao buscar lançamento", err)
	}
	return t, nil
}

// FindAll lista lançamentos, mais recentes primeiro.
func (r *TransactionRepository) FindAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return nil, err
	}

	var conditions []string
	var args []interface{}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		op := "<="
		if filter.EndExclusive {
			op = "<"
		}
		conditions = append(conditions, fmt.Sprintf("date %s $%d", op, len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM financial_transactions`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := db.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar lançamentos.", err)
		return nil, database.Classify("Falha ao listar lançamentos", err)
	}
	defer rows.Close()

	transactions := make([]domain.FinancialTransaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear lançamento.", err)
			return nil, database.Classify("Falha ao mapear lançamentos do DB", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Classify("Erro após iteração de lançamentos", err)
	}

	return transactions, nil
}
