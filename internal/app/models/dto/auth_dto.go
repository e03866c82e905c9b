package dto

import "encoding/json"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents access token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// LoginResponse carries the authenticated user payload the client stores,
// plus the issued token.
type LoginResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Username    string          `json:"username"`
	Role        string          `json:"role"`
	ExtraFields json.RawMessage `json:"extraFields"`
	Token       TokenResponse   `json:"token"`
}
