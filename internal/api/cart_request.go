package api

// swagger:model api.CartRequest
type CartRequest struct {
	ServiceID int `json:"serviceId" form:"serviceId" validate:"required,gt=0" example:"3"`
}
