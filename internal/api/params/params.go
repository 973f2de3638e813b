// Package params extrai e valida parâmetros de rota e de query.
package params

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	apperror "gestao/internal/errors"
)

const dateOnly = "2006-01-02"

// ID lê a variável de rota name como inteiro positivo.
func ID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um inteiro positivo.", name))
	}
	return id, nil
}

// OptionalInt lê um inteiro da query; ausente devolve nil.
func OptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um número inteiro.", name))
	}
	return &v, nil
}

// OptionalInt64 lê um int64 positivo da query; ausente devolve nil.
func OptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um inteiro positivo.", name))
	}
	return &v, nil
}

// RequiredInt lê um inteiro obrigatório da query.
func RequiredInt(r *http.Request, name string) (int, error) {
	v, err := OptionalInt(r, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' é obrigatório.", name))
	}
	return *v, nil
}

// DateRange lê start e end da query em RFC3339 ou AAAA-MM-DD.
// Datas sem hora são interpretadas em loc; um end sem hora cobre o dia inteiro.
func DateRange(r *http.Request, loc *time.Location) (start, end *time.Time, err error) {
	q := r.URL.Query()

	if raw := q.Get("start"); raw != "" {
		t, _, perr := parseTime(raw, loc)
		if perr != nil {
			return nil, nil, apperror.NewValidationError("O parâmetro 'start' deve estar em RFC3339 ou AAAA-MM-DD.")
		}
		start = &t
	}

	if raw := q.Get("end"); raw != "" {
		t, dateOnlyValue, perr := parseTime(raw, loc)
		if perr != nil {
			return nil, nil, apperror.NewValidationError("O parâmetro 'end' deve estar em RFC3339 ou AAAA-MM-DD.")
		}
		if dateOnlyValue {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		end = &t
	}

	return start, end, nil
}

func parseTime(raw string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dateOnly, raw, loc)
	return t, true, err
}

// DecodeJSON decodifica o corpo em dst, rejeitando campos desconhecidos.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
