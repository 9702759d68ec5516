// File: internal/api/checkout_request.go
package api

// CheckoutItem 前端購物車中的一筆服務，只使用 id，其餘欄位以伺服器目錄為準
type CheckoutItem struct {
	ID    int    `json:"id" example:"3"`
	Title string `json:"title,omitempty" example:"Prospect List Building"`
}

// CheckoutRequest items 為空時改用伺服器端購物車
// swagger:model api.CheckoutRequest
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
}

// ServiceIDs 回傳 items 中的服務 id
func (r CheckoutRequest) ServiceIDs() []int {
	ids := make([]int, 0, len(r.Items))
	for _, it := range r.Items {
		ids = append(ids, it.ID)
	}
	return ids
}
