package sms

// sendResponse é a resposta do gateway para envio e consulta de
// status. Price vem como string decimal ("-0.075") quando disponível.
type sendResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	Price        string `json:"price"`
	PriceUnit    string `json:"price_unit"`
	ErrorMessage string `json:"error_message"`
}
