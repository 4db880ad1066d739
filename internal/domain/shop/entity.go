package shop

import "time"

// DeliveryDay is the weekday route slot a shop is visited on.
type DeliveryDay string

const (
	DayMonday    DeliveryDay = "MON"
	DayTuesday   DeliveryDay = "TUE"
	DayWednesday DeliveryDay = "WED"
	DayThursday  DeliveryDay = "THU"
	DayFriday    DeliveryDay = "FRI"
	DaySaturday  DeliveryDay = "SAT"
)

// Valid reports whether d is a known delivery day.
func (d DeliveryDay) Valid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday:
		return true
	}
	return false
}

// Shop is a retail outlet the business sells to. Bills are issued per shop
// per visit; the shop's PENDING bills form its payment-allocation queue.
type Shop struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	OwnerName   string      `json:"owner_name"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	DeliveryDay DeliveryDay `json:"delivery_day"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
