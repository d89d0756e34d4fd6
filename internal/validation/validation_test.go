package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"ana.diaz@correo.com.uy", true},
		{"", false},
		{"a@b", false},
		{"a b@c.com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Email(tc.in), "email %q", tc.in)
	}
}

func TestPassword(t *testing.T) {
	ok, msg := Password("secret12")
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = Password("short")
	assert.False(t, ok)
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", msg)
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("099111222"))
	assert.True(t, Phone("+598 99 111 222"))
	assert.False(t, Phone("1234567")) // too short
	assert.False(t, Phone("not-a-phone"))
}

func TestDocument(t *testing.T) {
	assert.True(t, Document("1234567"))
	assert.False(t, Document("123456"))   // too short
	assert.False(t, Document("12345a78")) // non-digit
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("x"))
	assert.False(t, Required("   "))
	assert.False(t, Required(""))
}
