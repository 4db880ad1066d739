package user

import "time"

// Role classifies what a user does on the route.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSalesman Role = "salesman"
)

// User is the person who issued a bill. Credential and session handling live
// outside this service; users here are plain records referenced by bills.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
