package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Secret123"))
	assert.False(t, IsStrongPassword("secret123"))
	assert.False(t, IsStrongPassword("SECRET123"))
	assert.False(t, IsStrongPassword("SecretPass"))
}

func TestContainsPersonalData(t *testing.T) {
	assert.False(t, ContainsPersonalData("Hola, me gustaría empezar a entrenar"))
	assert.False(t, ContainsPersonalData("Can we train 3 days a week at 18:00?"))

	assert.True(t, ContainsPersonalData("Mi teléfono es el que tienes"))
	assert.True(t, ContainsPersonalData("write me at ana@example.com"))
	assert.True(t, ContainsPersonalData("call +34 600 123 456 after lunch"))
	assert.True(t, ContainsPersonalData("Send your address please"))
}

func TestRegisterOn_Tags(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	type form struct {
		Name     string `validate:"personname"`
		Password string `validate:"strongpassword"`
		Body     string `validate:"nopersonaldata"`
	}

	assert.NoError(t, v.Struct(form{Name: "María José", Password: "Abcdef12", Body: "See you Monday"}))
	assert.Error(t, v.Struct(form{Name: "R2D2", Password: "Abcdef12", Body: "ok"}))
	assert.Error(t, v.Struct(form{Name: "Ana", Password: "abcdefgh", Body: "ok"}))
	assert.Error(t, v.Struct(form{Name: "Ana", Password: "Abcdef12", Body: "mail ana@x.com"}))
}
