package usecase

// DomainError é erro de negócio: entrada inválida, mapeamento
// incompleto, ação desconhecida. Vira 4xx na borda HTTP e nunca é
// retentado automaticamente.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError é falha de infraestrutura: banco fora, provedor de
// mensagem indisponível. Vira 5xx na borda HTTP.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
