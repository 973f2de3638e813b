package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/database"
	"gestao/internal/pkg/logger"
)

// uniqueViolation é o SQLSTATE do PostgreSQL para violação de UNIQUE.
const uniqueViolation = "23505"

// UserRepository guarda as contas de operadores do back-office.
type UserRepository struct {
	Conn      database.Conn
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository.
func NewUserRepository(conn database.Conn, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		Conn:      conn,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// Save insere um novo usuário. E-mail duplicado vira ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.User{}, err
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	query := `INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = db.ExecContext(ctxTimeout, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			r.logger.Info("Tentativa de registro com e-mail já existente.", map[string]interface{}{"email": user.Email})
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("E-mail '%s' já está cadastrado.", user.Email))
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, database.Classify("Falha ao inserir usuário", err)
	}

	r.logger.Info("Usuário salvo com sucesso.", map[string]interface{}{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db, err := r.Conn.DB(ctxTimeout)
	if err != nil {
		return domain.User{}, err
	}

	query := `SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`

	var user domain.User
	err = db.QueryRowContext(ctxTimeout, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com email '%s' não encontrado", email))
		}
		r.logger.Error("Falha ao buscar usuário por email no DB.", err)
		return domain.User{}, database.Classify("Falha ao buscar usuário por email", err)
	}

	return user, nil
}
