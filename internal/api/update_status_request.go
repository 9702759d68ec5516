package api

// swagger:model api.UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" example:"approved"`
}
