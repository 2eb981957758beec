package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{
		"09123456789",
		"+989123456789",
		"9123456789",
		"09999999999",
	}
	for _, phone := range valid {
		assert.NoError(t, ValidatePhoneNumber(phone), phone)
	}

	invalid := []string{
		"",
		"12345",
		"98987654321",
		"0912345678",    // one digit short
		"091234567890",  // one digit long
		"0912345678a",   // non-digit
		"+9809123456789",
		"00123456789",
	}
	for _, phone := range invalid {
		err := ValidatePhoneNumber(phone)
		assert.ErrorIs(t, err, ErrInvalidPhoneNumber, phone)
	}
}

func TestValidatePhoneNumberErrorCarriesValue(t *testing.T) {
	err := ValidatePhoneNumber("12345")
	assert.True(t, errors.Is(err, ErrInvalidPhoneNumber))
	assert.Contains(t, err.Error(), "12345")
}
