package domain

import "strings"

// MinPasswordLength is enforced on registration. Passwords are never verified.
const MinPasswordLength = 8

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks required fields and returns the parsed role.
func (r LoginRequest) Validate() (Role, error) {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" || strings.TrimSpace(r.Role) == "" {
		return "", invalid("Por favor complete todos los campos")
	}
	role, ok := ParseRole(r.Role)
	if !ok {
		return "", invalid("rol desconocido: " + r.Role)
	}
	return role, nil
}

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// Validate mirrors the registration screen: all fields present, matching
// passwords, minimum length.
func (r RegisterRequest) Validate() (Role, error) {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" ||
		r.Password == "" || r.ConfirmPassword == "" || strings.TrimSpace(r.Role) == "" {
		return "", invalid("Por favor complete todos los campos")
	}
	if r.Password != r.ConfirmPassword {
		return "", invalid("Las contraseñas no coinciden")
	}
	if len([]rune(r.Password)) < MinPasswordLength {
		return "", invalid("La contraseña debe tener al menos 8 caracteres")
	}
	role, ok := ParseRole(r.Role)
	if !ok {
		return "", invalid("rol desconocido: " + r.Role)
	}
	return role, nil
}
