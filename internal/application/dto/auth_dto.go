package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse token emitido tras registro o login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name,omitempty"`
}

// UpdateProfileRequest body para PUT /api/profile.
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name,omitempty"`
}
