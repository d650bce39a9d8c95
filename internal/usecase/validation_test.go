package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneLocalFormats(t *testing.T) {
	cases := map[string]string{
		"(11) 99999-9999": "+5511999999999",
		"11 99999 9999":   "+5511999999999",
		"011999999999":    "+5511999999999",
		"1133334444":      "+551133334444",
	}
	for input, expected := range cases {
		got, err := NormalizePhone(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}
}

func TestNormalizePhoneAlreadyInternational(t *testing.T) {
	got, err := NormalizePhone("+55 11 99999-9999")
	assert.NoError(t, err)
	assert.Equal(t, "+5511999999999", got)

	got, err = NormalizePhone("5511999999999")
	assert.NoError(t, err)
	assert.Equal(t, "+5511999999999", got)
}

func TestNormalizePhoneRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "123", "999", "123456789012345"} {
		_, err := NormalizePhone(input)
		assert.Error(t, err, input)
	}
}

func TestValidateCreateLeadInput(t *testing.T) {
	errs := ValidateCreateLeadInput(CreateLeadInput{})
	assert.Len(t, errs, 2) // name e phone obrigatórios

	errs = ValidateCreateLeadInput(CreateLeadInput{
		Name:  "Ana",
		Phone: "(11) 99999-9999",
		Email: "não-é-email",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	errs = ValidateCreateLeadInput(CreateLeadInput{
		Name:  "Ana",
		Phone: "(11) 99999-9999",
		Email: "ana@example.com",
	})
	assert.Empty(t, errs)
}
