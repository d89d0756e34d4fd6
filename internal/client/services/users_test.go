package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avillagran/boletera/internal/client/models"
)

func TestUpdateProfile(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/user/profile": `{
			"id":7,"email":"ana@b.com","nombre":"Ana","apellido":"Diaz",
			"ci":"1234567","telefono":"99111222","fechaNac":"1990-01-01","rol":"CLIENTE"
		}`,
	}}
	svc := NewUsersService(fa)

	phone := int64(99111222)
	user, err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{
		FirstName: "Ana", LastName: "Diaz", Email: "ana@b.com", Phone: &phone,
	})
	require.NoError(t, err)

	call := fa.lastCall()
	assert.Equal(t, "PUT", call.method)
	assert.True(t, call.includeAuth)

	body, err := json.Marshal(call.body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Ana","apellido":"Diaz","email":"ana@b.com","telefono":99111222}`, string(body))

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ana", user.FirstName)
}

func TestChangePassword_SendsBothPasswords(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/user/password": `{"message":"Contraseña actualizada"}`,
	}}
	svc := NewUsersService(fa)

	msg, err := svc.ChangePassword(context.Background(), "oldsecret", "newsecret")
	require.NoError(t, err)
	assert.Equal(t, "Contraseña actualizada", msg)

	call := fa.lastCall()
	assert.Equal(t, "PUT", call.method)
	assert.True(t, call.includeAuth)
	assert.Equal(t, map[string]string{
		"currentPassword": "oldsecret",
		"newPassword":     "newsecret",
	}, call.body)
}
