package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/usecase"
)

// Envelope padrão: {success, data|message|error}. Nunca vaza stack
// trace para o cliente.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError traduz a taxonomia de erros do usecase para HTTP:
// DomainError 4xx, entidade ausente 404, o resto 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrPropertyNotFound),
		errors.Is(err, entity.ErrReleaseNotFound):
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case usecase.IsDomainError(err):
		domainErr := err.(*usecase.DomainError)
		writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
	case usecase.IsTechnicalError(err):
		technicalErr := err.(*usecase.TechnicalError)
		log.Printf("❌ Erro técnico: %s - %s", technicalErr.Code, technicalErr.Message)
		writeErrorResponse(w, http.StatusInternalServerError, technicalErr.Code, "erro interno, tente novamente")
	default:
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "erro interno, tente novamente")
	}
}
