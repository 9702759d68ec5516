package api

// HealthResponse 健康檢查回應；deep 檢查時附上各依賴狀態
// swagger:model api.HealthResponse
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}
