// File: internal/model/service.go
package model

// ServiceOffering 為靜態目錄中的一項服務
type ServiceOffering struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
