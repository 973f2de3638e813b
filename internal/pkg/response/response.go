// Package response padroniza as respostas JSON da API.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gestao/internal/domain"
	apperror "gestao/internal/errors"
	"gestao/internal/pkg/logger"
)

// JSON escreve data com o status informado. data nil gera corpo vazio.
func JSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(data)
}

// Error traduz err para o status HTTP e escreve um domain.ErrorResponse.
// Erros 5xx são logados com a causa; a resposta ao cliente nunca a expõe.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s", r.Method, r.URL.Path), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	_ = JSON(w, status, domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// Handle escreve data com successStatus quando err é nil, ou o erro traduzido.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}

	if encErr := JSON(w, successStatus, data); encErr != nil {
		log.Error("Falha ao codificar JSON de resposta", encErr)
		return
	}

	log.Info("Requisição concluída com sucesso", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": successStatus,
	})
}
