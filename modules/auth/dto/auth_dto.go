package dto

// ===================== Request DTOs =====================

// RegisterRequest for account creation
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Birthdate string `json:"birthdate"` // YYYY-MM-DD
}

// LoginRequest for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ===================== Response DTOs =====================

// RegisterResponse returns the new account id
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// LoginResponse carries the bearer token the UI attaches to event requests
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
