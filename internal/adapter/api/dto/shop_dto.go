package dto

import (
	"time"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
)

// ShopRequest creates or updates a shop.
type ShopRequest struct {
	Name        string `json:"name" binding:"required"`
	OwnerName   string `json:"owner_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DeliveryDay string `json:"delivery_day" binding:"required,oneof=MON TUE WED THU FRI SAT"`
}

// ToShop converts the request to a domain shop.
func (r *ShopRequest) ToShop() *shop.Shop {
	return &shop.Shop{
		Name:        r.Name,
		OwnerName:   r.OwnerName,
		Phone:       r.Phone,
		Address:     r.Address,
		DeliveryDay: shop.DeliveryDay(r.DeliveryDay),
	}
}

// ShopResponse is a shop in replies.
type ShopResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	OwnerName   string           `json:"owner_name"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	DeliveryDay shop.DeliveryDay `json:"delivery_day"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ShopListResponse is a shop list.
type ShopListResponse struct {
	Items []ShopResponse `json:"items"`
	Total int            `json:"total"`
}

// ToShopResponse converts a domain shop to its DTO.
func ToShopResponse(s *shop.Shop) *ShopResponse {
	return &ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		OwnerName:   s.OwnerName,
		Phone:       s.Phone,
		Address:     s.Address,
		DeliveryDay: s.DeliveryDay,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToShopListResponse converts a domain shop list to its DTO.
func ToShopListResponse(shops []*shop.Shop) *ShopListResponse {
	items := make([]ShopResponse, len(shops))
	for i, s := range shops {
		items[i] = *ToShopResponse(s)
	}
	return &ShopListResponse{Items: items, Total: len(items)}
}
