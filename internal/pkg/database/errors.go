package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/lib/pq"

	apperror "gestao/internal/errors"
)

// Classify traduz um erro do banco para a taxonomia da aplicação.
// Falhas de conexão (rede, conexão quebrada, timeout, servidor desligando)
// viram UnavailableError; o resto vira InternalError via NewDBError.
func Classify(msg string, err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return apperror.NewUnavailableError(msg, err)
	}
	return apperror.NewDBError(msg, err)
}

// IsUnavailable informa se err indica que o PostgreSQL não está acessível.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Classe 08: connection exception. 57P01..57P03: admin_shutdown, crash_shutdown, cannot_connect_now.
		return pqErr.Code.Class() == "08" || strings.HasPrefix(string(pqErr.Code), "57P0")
	}
	return false
}
