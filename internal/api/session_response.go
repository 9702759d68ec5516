package api

// SessionResponse 未登入時只有 loggedIn=false
// swagger:model api.SessionResponse
type SessionResponse struct {
	LoggedIn bool   `json:"loggedIn" example:"true"`
	UserID   int    `json:"userId,omitempty" example:"1"`
	Email    string `json:"email,omitempty" example:"alice@example.com"`
	Role     string `json:"role,omitempty" example:"user"`
}
