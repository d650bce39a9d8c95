package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/infra/http/middleware"
	"github.com/xavierca1/imobi-crm/internal/usecase"
)

type FollowUpHandler struct {
	FollowUpUC *usecase.FollowUpUseCase
	BulkUC     *usecase.BulkMessageUseCase
}

func NewFollowUpHandler(followUpUC *usecase.FollowUpUseCase, bulkUC *usecase.BulkMessageUseCase) *FollowUpHandler {
	return &FollowUpHandler{
		FollowUpUC: followUpUC,
		BulkUC:     bulkUC,
	}
}

// Evaluate (GET /followups): leads vencidos para contato agora.
// Zero pendências é sucesso com total 0, nunca erro.
func (h *FollowUpHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	output, err := h.FollowUpUC.Evaluate(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordFollowUpsDue(output.Total)
	writeJSON(w, http.StatusOK, output)
}

// NotifyAll (POST /followups/notify-all): dispara WhatsApp para cada
// lead vencido, em série, com throttle. Sem body na requisição, cada
// lead recebe a própria saudação pronta; com {"body": "..."}, todos
// recebem o mesmo texto. O resumo parcial volta mesmo quando parte dos
// envios falha.
func (h *FollowUpHandler) NotifyAll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body string `json:"body"`
	}
	// Body é opcional; requisição vazia é válida.
	_ = json.NewDecoder(r.Body).Decode(&req)

	evaluation, err := h.FollowUpUC.Evaluate(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if evaluation.Total == 0 {
		writeJSON(w, http.StatusOK, usecase.BulkSendOutput{Success: true})
		return
	}

	leads := make([]*entity.Lead, 0, evaluation.Total)
	bodies := make([]string, 0, evaluation.Total)
	for _, candidate := range evaluation.Leads {
		leads = append(leads, candidate.Lead)
		bodies = append(bodies, candidate.Message)
	}

	var output *usecase.BulkSendOutput
	if req.Body != "" {
		output = h.BulkUC.Execute(r.Context(), leads, req.Body)
	} else {
		output = h.BulkUC.ExecuteEach(r.Context(), leads, bodies)
	}

	for _, detail := range output.Details {
		status := "sent"
		if detail.Error != "" {
			status = "error"
		}
		middleware.RecordMessageSent("whatsapp", status)
	}

	writeJSON(w, http.StatusOK, output)
}
