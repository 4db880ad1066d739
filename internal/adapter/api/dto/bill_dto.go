package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/service"
)

// BillItemRequest is one line of a bill request. Quantity is signed: positive
// lines are sales, negative lines are returns or wastage. Rate, SGST and CGST
// are taken as submitted; the effective-price endpoint exists for clients
// that want the server's suggestion first.
type BillItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Rate      decimal.Decimal `json:"rate"`
	SGST      decimal.Decimal `json:"sgst"`
	CGST      decimal.Decimal `json:"cgst"`
}

// BillRequest creates a bill. An empty item list with a positive received
// amount records a pure payment; apply_to_pending sweeps that payment into
// the shop's outstanding bills, oldest first.
type BillRequest struct {
	ShopID         int64             `json:"shop_id" binding:"required"`
	UserID         int64             `json:"user_id" binding:"required"`
	BillDate       *time.Time        `json:"bill_date"`
	ReceivedAmount decimal.Decimal   `json:"received_amount"`
	Notes          string            `json:"notes"`
	ApplyToPending bool              `json:"apply_to_pending"`
	Items          []BillItemRequest `json:"items"`
}

// ToCreateBillInput converts the request into the service input.
func (r *BillRequest) ToCreateBillInput() service.CreateBillInput {
	items := make([]service.ItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = service.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Rate:      item.Rate,
			SGST:      item.SGST,
			CGST:      item.CGST,
		}
	}

	return service.CreateBillInput{
		ShopID:         r.ShopID,
		UserID:         r.UserID,
		BillDate:       r.BillDate,
		ReceivedAmount: r.ReceivedAmount,
		Notes:          r.Notes,
		ApplyToPending: r.ApplyToPending,
		Items:          items,
	}
}

// BillUpdateRequest edits a bill. Absent fields are left untouched.
type BillUpdateRequest struct {
	ReceivedAmount *decimal.Decimal `json:"received_amount"`
	Status         *string          `json:"status"`
	Notes          *string          `json:"notes"`
}

// ToUpdateBillInput converts the request into the service input.
func (r *BillUpdateRequest) ToUpdateBillInput() service.UpdateBillInput {
	input := service.UpdateBillInput{
		ReceivedAmount: r.ReceivedAmount,
		Notes:          r.Notes,
	}
	if r.Status != nil {
		st := bill.Status(*r.Status)
		input.Status = &st
	}
	return input
}

// BillItemResponse is one bill line in replies.
type BillItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	Rate      decimal.Decimal  `json:"rate"`
	Amount    decimal.Decimal  `json:"amount"`
	SGST      decimal.Decimal  `json:"sgst"`
	CGST      decimal.Decimal  `json:"cgst"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// BillResponse is a bill in replies.
type BillResponse struct {
	ID             int64              `json:"id"`
	BillNumber     string             `json:"bill_number"`
	ShopID         int64              `json:"shop_id"`
	UserID         int64              `json:"user_id"`
	BillDate       time.Time          `json:"bill_date"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	ReceivedAmount decimal.Decimal    `json:"received_amount"`
	PendingAmount  decimal.Decimal    `json:"pending_amount"`
	Status         bill.Status        `json:"status"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	Shop           *ShopResponse      `json:"shop,omitempty"`
	User           *UserResponse      `json:"user,omitempty"`
	Items          []BillItemResponse `json:"items,omitempty"`
}

// BillListResponse is a paginated bill list.
type BillListResponse struct {
	Items      []BillResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// OutstandingResponse is a shop's open debt.
type OutstandingResponse struct {
	ShopID      int64           `json:"shop_id"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// ToBillResponse converts a domain bill to its DTO.
func ToBillResponse(b *bill.Bill) *BillResponse {
	resp := &BillResponse{
		ID:             b.ID,
		BillNumber:     b.BillNumber,
		ShopID:         b.ShopID,
		UserID:         b.UserID,
		BillDate:       b.BillDate,
		TotalAmount:    b.TotalAmount,
		ReceivedAmount: b.ReceivedAmount,
		PendingAmount:  b.PendingAmount,
		Status:         b.Status,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
	}

	if b.Shop != nil {
		resp.Shop = ToShopResponse(b.Shop)
	}
	if b.User != nil {
		resp.User = ToUserResponse(b.User)
	}

	for _, item := range b.Items {
		itemResp := BillItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Rate:      item.Rate,
			Amount:    item.Amount,
			SGST:      item.SGST,
			CGST:      item.CGST,
		}
		if item.Product != nil {
			itemResp.Product = ToProductResponse(item.Product)
		}
		resp.Items = append(resp.Items, itemResp)
	}

	return resp
}

// ToBillListResponse converts a domain bill list to its paginated DTO.
func ToBillListResponse(bills []*bill.Bill, total, page, size int) *BillListResponse {
	items := make([]BillResponse, len(bills))
	for i, b := range bills {
		items[i] = *ToBillResponse(b)
	}

	return &BillListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
