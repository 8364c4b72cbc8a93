package utils_test

import (
	"testing"

	"fieldpro-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "e164", phone: "+79991234567", want: true},
		{name: "formatted", phone: "+7 (999) 123-45-67", want: true},
		{name: "bare_digits", phone: "123", want: true},
		{name: "leading_zero", phone: "0123456", want: false},
		{name: "letters", phone: "phone", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ValidatePhone(tt.phone))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+79991234567", utils.NormalizePhone("+7 (999) 123-45-67"))
	assert.Equal(t, "123", utils.NormalizePhone("123"))
}
