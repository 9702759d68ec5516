// File: internal/api/order_response.go
package api

import "nsleadprovider/internal/model"

// UpdateOrderResponse 管理員更新狀態後的回應
// swagger:model api.UpdateOrderResponse
type UpdateOrderResponse struct {
	Order *model.Order `json:"order"`
}
