package dto

import (
	"time"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
)

// UserRequest creates a user.
type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Role  string `json:"role" binding:"required,oneof=admin salesman"`
}

// ToUser converts the request to a domain user.
func (r *UserRequest) ToUser() *user.User {
	return &user.User{
		Name:  r.Name,
		Phone: r.Phone,
		Role:  user.Role(r.Role),
	}
}

// UserResponse is a user in replies.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      user.Role `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse is a user list.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

// ToUserResponse converts a domain user to its DTO.
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converts a domain user list to its DTO.
func ToUserListResponse(users []*user.User) *UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = *ToUserResponse(u)
	}
	return &UserListResponse{Items: items, Total: len(items)}
}
