package models

import "encoding/json"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type,omitempty"`
	User        json.RawMessage `json:"user,omitempty"`
}

// User is the account record. Unknown fields are kept by callers that hold
// the raw JSON; this struct is for display.
type User struct {
	ID      ID     `json:"id"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Plan    string `json:"plan,omitempty"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
	Plan     string `json:"plan"`
}

// LoginRequest is the body of POST /auth/login. RememberMe is only sent by
// the legacy API.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe *bool  `json:"remember_me,omitempty"`
}
