package auth

import "strings"

// Claims es lo que el proveedor de identidad confirma sobre quien llama.
// Email, Name y TenantID son opcionales.
type Claims struct {
	UserID   string
	Email    string
	Name     string
	TenantID string
}

// Authenticated es true si hay un usuario identificado.
func (c Claims) Authenticated() bool {
	return strings.TrimSpace(c.UserID) != ""
}
