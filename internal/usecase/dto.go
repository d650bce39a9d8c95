package usecase

import (
	"time"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/spreadsheet"
)

type CreateLeadInput struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone"`
	Source string `json:"source,omitempty"`
}

type CreateLeadOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type ImportReleaseInput struct {
	Name        string              `json:"name"`
	Builder     string              `json:"builder,omitempty"`
	City        string              `json:"city,omitempty"`
	Description string              `json:"description,omitempty"`
	Columns     []string            `json:"columns"`
	Rows        [][]string          `json:"rows"`
	Preamble    string              `json:"preamble,omitempty"`
	Mapping     spreadsheet.Mapping `json:"mapping"`
}

type ImportReleaseOutput struct {
	ReleaseID   string `json:"release_id"`
	Name        string `json:"name"`
	UnitCount   int    `json:"unit_count"`
	Description string `json:"description"`
}

// FollowUpCandidate é uma projeção somente-leitura calculada a cada
// avaliação; nunca é persistida.
type FollowUpCandidate struct {
	Lead        *entity.Lead `json:"lead"`
	Priority    string       `json:"priority"` // alta, média, baixa
	DaysOverdue int          `json:"days_overdue"`
	NextContact time.Time    `json:"next_contact"`
	Message     string       `json:"message"`
}

type FollowUpOutput struct {
	Leads   []FollowUpCandidate `json:"leads"`
	Total   int                 `json:"total"`
	Message string              `json:"message"`
}

// BulkSendDetail registra o resultado de um envio individual dentro de
// um lote. Falhas viram itens aqui, não abortam o loop.
type BulkSendDetail struct {
	LeadID    string `json:"lead_id"`
	Phone     string `json:"phone"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type BulkSendOutput struct {
	Success bool             `json:"success"`
	Sent    int              `json:"sent"`
	Errors  int              `json:"errors"`
	Details []BulkSendDetail `json:"details"`
}
