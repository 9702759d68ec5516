// File: internal/service/cart.go
package service

import (
	"context"

	"nsleadprovider/internal/apperr"
	"nsleadprovider/internal/catalog"
	"nsleadprovider/internal/model"
)

type CartRepository interface {
	AddCartItem(ctx context.Context, userID, serviceID int) error
	RemoveCartItem(ctx context.Context, userID, serviceID int) error
	ListCartServiceIDs(ctx context.Context, userID int) ([]int, error)
}

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Add 加入服務後回傳最新購物車，重複加入不視為錯誤
func (s *CartService) Add(ctx context.Context, userID, serviceID int) ([]model.ServiceOffering, error) {
	if _, ok := catalog.Lookup(serviceID); !ok {
		return nil, apperr.Validation("unknown service")
	}
	if err := s.repo.AddCartItem(ctx, userID, serviceID); err != nil {
		return nil, apperr.Persistence("failed to update cart", err)
	}
	return s.List(ctx, userID)
}

// Remove 移除服務後回傳最新購物車，移除不存在的項目不視為錯誤
func (s *CartService) Remove(ctx context.Context, userID, serviceID int) ([]model.ServiceOffering, error) {
	if err := s.repo.RemoveCartItem(ctx, userID, serviceID); err != nil {
		return nil, apperr.Persistence("failed to update cart", err)
	}
	return s.List(ctx, userID)
}

// List 以目錄解析購物車內容，已下架的 id 會被略過
func (s *CartService) List(ctx context.Context, userID int) ([]model.ServiceOffering, error) {
	ids, err := s.repo.ListCartServiceIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to load cart", err)
	}
	return catalog.Resolve(ids), nil
}
