// File: internal/api/auth_response.go
package api

// AuthResponse 註冊與登入成功的回應
// swagger:model api.AuthResponse
type AuthResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
