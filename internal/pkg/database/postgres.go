package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	// Driver PostgreSQL
	_ "github.com/lib/pq"

	apperror "gestao/internal/errors"
)

// ErrNotConfigured indica que nenhuma DATABASE_URL foi informada.
var ErrNotConfigured = errors.New("DATABASE_URL não configurada")

// Conn é o contrato usado pelos repositórios para obter o pool de conexões.
type Conn interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// Provider inicializa o pool PostgreSQL no primeiro uso.
// Enquanto o banco não estiver acessível, toda chamada retorna UnavailableError.
type Provider struct {
	dsn  string
	open func(ctx context.Context, dsn string) (*sql.DB, error)

	mu sync.Mutex
	db *sql.DB
}

// NewProvider cria o Provider. Nenhuma conexão é aberta aqui.
func NewProvider(dsn string) *Provider {
	return &Provider{dsn: dsn, open: NewPostgresDB}
}

// DB retorna o pool, abrindo-o na primeira chamada bem-sucedida.
// Falhas não ficam em cache: a próxima chamada tenta novamente.
func (p *Provider) DB(ctx context.Context) (*sql.DB, error) {
	if p.dsn == "" {
		return nil, apperror.NewUnavailableError("banco de dados não configurado", ErrNotConfigured)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := p.open(ctx, p.dsn)
	if err != nil {
		return nil, apperror.NewUnavailableError("falha ao conectar ao banco de dados", err)
	}
	p.db = db
	return db, nil
}

// Close fecha o pool se ele tiver sido aberto.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
// Retorna a conexão *sql.DB pronta para uso.
func NewPostgresDB(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Garante que as credenciais e o servidor estão corretos
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}
