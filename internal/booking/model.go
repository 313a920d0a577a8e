package booking

import "time"

// Booking statuses. Transitions are not restricted: any status may replace
// any other.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// RecentLimit caps the unfiltered listing.
const RecentLimit = 100

type Booking struct {
	ID        int64     `db:"id" json:"id" example:"1"`
	Name      string    `db:"name" json:"name" example:"Anna"`
	Email     string    `db:"email" json:"email" example:"anna@example.com"`
	Phone     string    `db:"phone" json:"phone" example:"+79990000000"`
	Date      string    `db:"booking_date" json:"date" example:"2024-05-01"`
	Time      string    `db:"booking_time" json:"time" example:"10:00"`
	Status    string    `db:"status" json:"status" example:"pending"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateBookingRequest struct {
	Name  string `json:"name" validate:"required" example:"Anna"`
	Email string `json:"email" validate:"required" example:"anna@example.com"`
	Phone string `json:"phone" validate:"required" example:"+79990000000"`
	Date  string `json:"date" validate:"required" example:"2024-05-01"`
	Time  string `json:"time" validate:"required" example:"10:00"`
}

type UpdateStatusRequest struct {
	ID     int64  `json:"id" validate:"required" example:"1"`
	Status string `json:"status" validate:"required" example:"confirmed"`
}

type ListBookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

type Summary struct {
	Date     string         `json:"date,omitempty" example:"2024-05-01"`
	Total    int            `json:"total" example:"3"`
	ByStatus map[string]int `json:"byStatus"`
}
