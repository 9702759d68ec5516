package api

// swagger:model api.CheckoutResponse
type CheckoutResponse struct {
	Message string `json:"message" example:"Order placed successfully"`
	OrderID int    `json:"orderId" example:"42"`
}
