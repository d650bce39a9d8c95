package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone converte um telefone digitado livremente para o
// formato internacional E.164 brasileiro (+55DDDNÚMERO). Aceita
// "(11) 99999-9999", "011999999999" e números já com código do país.
// Devolve erro quando não dá para chegar em um celular/fixo válido.
func NormalizePhone(phone string) (string, error) {
	digits := nonDigits.ReplaceAllString(phone, "")

	// Prefixo de operadora/DDD discado ("0 11 9...")
	digits = strings.TrimPrefix(digits, "0")

	switch {
	case len(digits) == 10 || len(digits) == 11:
		return "+55" + digits, nil
	case (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, "55"):
		return "+" + digits, nil
	}
	return "", fmt.Errorf("telefone inválido: %q", phone)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if _, err := NormalizePhone(input.Phone); err != nil {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}
