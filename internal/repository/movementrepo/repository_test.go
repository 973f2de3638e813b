package movementrepo_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
	"gestao/internal/repository/movementrepo"
)

type mockConn struct {
	db *sql.DB
}

func (c mockConn) DB(context.Context) (*sql.DB, error) { return c.db, nil }

// spyCache registra as chaves removidas; os demais métodos não são usados por Record.
type spyCache struct {
	mu      sync.Mutex
	deleted []string
}

func (c *spyCache) Get(context.Context, string) (string, error) { return "", errors.New("não usado") }
func (c *spyCache) GetInt(context.Context, string) (int, error) { return 0, errors.New("não usado") }
func (c *spyCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (c *spyCache) Incr(context.Context, string) (int64, error) { return 0, nil }
func (c *spyCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	return nil
}

var (
	insertMovement = regexp.QuoteMeta("INSERT INTO stock_movements (product_id, type, quantity, date, observation)")
	updateQuantity = regexp.QuoteMeta("SET quantity = quantity + $1, updated_at = NOW()")
	movementCols   = []string{"id", "product_id", "type", "quantity", "date", "observation", "created_at"}
)

func setup(t *testing.T) (*movementrepo.MovementRepository, sqlmock.Sqlmock, *spyCache) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c := &spyCache{}
	repo := movementrepo.NewMovementRepository(mockConn{db: db}, c, time.Second, logger.NewNop())
	return repo, mock, c
}

func movementRow(id, productID int64, typ domain.MovementType, qty int64) *sqlmock.Rows {
	now := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(movementCols).AddRow(id, productID, string(typ), qty, now, nil, now)
}

func TestRecord_AppliesSignedDeltaInOneTransaction(t *testing.T) {
	cases := []struct {
		name      string
		typ       domain.MovementType
		delta     int
		newQty    int64
		productID int64
	}{
		{name: "entrada soma", typ: domain.Entrada, delta: 5, newQty: 15, productID: 3},
		{name: "saida subtrai sem piso em zero", typ: domain.Saida, delta: -5, newQty: -2, productID: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, c := setup(t)

			mock.ExpectBegin()
			mock.ExpectQuery(insertMovement).
				WithArgs(tc.productID, string(tc.typ), 5, sqlmock.AnyArg()).
				WillReturnRows(movementRow(1, tc.productID, tc.typ, 5))
			mock.ExpectQuery(updateQuantity).
				WithArgs(tc.delta, tc.productID).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(tc.newQty))
			mock.ExpectCommit()

			result, err := repo.Record(context.Background(), domain.MovementRequest{ProductID: tc.productID, Type: tc.typ, Quantity: 5})

			require.NoError(t, err)
			assert.True(t, result.ProductAdjusted)
			require.NotNil(t, result.NewQuantity)
			assert.Equal(t, int(tc.newQty), *result.NewQuantity)
			assert.Equal(t, int64(1), result.ID)
			assert.Equal(t, tc.typ, result.Type)
			assert.Len(t, c.deleted, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecord_MissingProductKeepsMovement(t *testing.T) {
	repo, mock, c := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(insertMovement).
		WithArgs(int64(99), "entrada", 2, sqlmock.AnyArg()).
		WillReturnRows(movementRow(8, 99, domain.Entrada, 2))
	mock.ExpectQuery(updateQuantity).
		WithArgs(2, int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectCommit()

	result, err := repo.Record(context.Background(), domain.MovementRequest{ProductID: 99, Type: domain.Entrada, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(8), result.ID)
	assert.False(t, result.ProductAdjusted)
	assert.Nil(t, result.NewQuantity)
	assert.Empty(t, c.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_UpdateFailureRollsBack(t *testing.T) {
	repo, mock, c := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(insertMovement).
		WillReturnRows(movementRow(1, 3, domain.Saida, 1))
	mock.ExpectQuery(updateQuantity).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := repo.Record(context.Background(), domain.MovementRequest{ProductID: 3, Type: domain.Saida, Quantity: 1})

	require.Error(t, err)
	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Empty(t, c.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_CommitFailureSkipsCacheInvalidation(t *testing.T) {
	repo, mock, c := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(insertMovement).
		WillReturnRows(movementRow(1, 3, domain.Entrada, 1))
	mock.ExpectQuery(updateQuantity).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(int64(11)))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	_, err := repo.Record(context.Background(), domain.MovementRequest{ProductID: 3, Type: domain.Entrada, Quantity: 1})

	require.Error(t, err)
	assert.Empty(t, c.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAll_BuildsFilters(t *testing.T) {
	repo, mock, _ := setup(t)
	productID := int64(3)
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE product_id = $1 AND date >= $2 ORDER BY date DESC, id DESC")).
		WithArgs(productID, start).
		WillReturnRows(movementRow(2, 3, domain.Saida, 1).AddRow(int64(1), int64(3), "entrada", int64(4), start, "compra", start))

	got, err := repo.FindAll(context.Background(), domain.MovementFilter{ProductID: &productID, Start: &start})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[1].Observation)
	assert.Equal(t, "compra", *got[1].Observation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
