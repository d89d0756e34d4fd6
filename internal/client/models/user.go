// Package models defines the wire and domain value types exchanged with the
// ticketing backend. JSON tags follow the backend's field names verbatim,
// including "contrasenia" (password) and "rol" (role).
package models

// Role values issued by the backend.
const (
	RoleClient = "CLIENTE"
	RoleSeller = "VENDEDOR"
	RoleAdmin  = "ADMINISTRADOR"
)

// User is the authenticated principal's profile snapshot. It is a value
// type: replaced wholesale on login and profile update, never mutated
// field-by-field.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	DocumentID string `json:"ci"`
	Phone      string `json:"telefono"`
	BirthDate  string `json:"fechaNac"`
	Role       string `json:"rol"`
	ClientType string `json:"tipoCliente,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"contrasenia"`
}

// RegisterRequest is the body of POST /api/auth/register. The backend takes
// ci and telefono as numbers here even though it returns them as strings in
// the login response.
type RegisterRequest struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	DocumentID int64  `json:"ci"`
	Password   string `json:"contrasenia"`
	Email      string `json:"email"`
	Phone      *int64 `json:"telefono,omitempty"`
	BirthDate  string `json:"fechaNac"` // YYYY-MM-DD
}

// AuthResponse is the flat body returned by POST /api/auth/login: the bearer
// token plus the principal's profile fields.
type AuthResponse struct {
	Token      string `json:"token"`
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"rol"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	DocumentID string `json:"ci"`
	Phone      string `json:"telefono"`
	BirthDate  string `json:"fechaNac"`
	ClientType string `json:"tipoCliente,omitempty"`
}

// User derives the User record from the login response.
func (r *AuthResponse) User() User {
	return User{
		ID:         r.ID,
		Email:      r.Email,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		DocumentID: r.DocumentID,
		Phone:      r.Phone,
		BirthDate:  r.BirthDate,
		Role:       r.Role,
		ClientType: r.ClientType,
	}
}

// UpdateProfileRequest is the body of PUT /api/user/profile.
type UpdateProfileRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     *int64 `json:"telefono,omitempty"`
}

// MessageResponse is the generic {message} body the backend returns for
// register, password-recovery and similar operations.
type MessageResponse struct {
	Message string `json:"message"`
}
