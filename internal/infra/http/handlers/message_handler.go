package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/infra/http/middleware"
	"github.com/xavierca1/imobi-crm/internal/usecase"
)

type MessageHandler struct {
	SMSBulkUC *usecase.BulkMessageUseCase
	Repo      usecase.LeadRepository
}

func NewMessageHandler(smsBulkUC *usecase.BulkMessageUseCase, repo usecase.LeadRepository) *MessageHandler {
	return &MessageHandler{
		SMSBulkUC: smsBulkUC,
		Repo:      repo,
	}
}

type bulkSMSRequest struct {
	Body    string   `json:"body"`
	LeadIDs []string `json:"lead_ids,omitempty"`
	Status  string   `json:"status,omitempty"`
}

// BulkSMS (POST /messages/bulk-sms): mesmo texto para uma seleção de
// leads, por lista de IDs ou por status. Envio em série com throttle,
// resumo parcial no retorno.
func (h *MessageHandler) BulkSMS(w http.ResponseWriter, r *http.Request) {
	var req bulkSMSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}
	if req.Body == "" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "campo 'body' é obrigatório")
		return
	}

	leads, err := h.resolveLeads(r, req)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	if len(leads) == 0 {
		writeJSON(w, http.StatusOK, usecase.BulkSendOutput{Success: true})
		return
	}

	output := h.SMSBulkUC.Execute(r.Context(), leads, req.Body)

	for _, detail := range output.Details {
		status := "sent"
		if detail.Error != "" {
			status = "error"
		}
		middleware.RecordMessageSent("sms", status)
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *MessageHandler) resolveLeads(r *http.Request, req bulkSMSRequest) ([]*entity.Lead, error) {
	if len(req.LeadIDs) > 0 {
		leads := make([]*entity.Lead, 0, len(req.LeadIDs))
		for _, id := range req.LeadIDs {
			lead, err := h.Repo.FindByID(r.Context(), id)
			if err != nil {
				return nil, err
			}
			leads = append(leads, lead)
		}
		return leads, nil
	}
	return h.Repo.List(r.Context(), req.Status)
}
