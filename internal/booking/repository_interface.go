package booking

import "context"

type Repository interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (int64, error)
	CreateExclusiveBooking(ctx context.Context, req CreateBookingRequest) (int64, error)
	ListBookingsByDate(ctx context.Context, date string) ([]Booking, error)
	ListRecentBookings(ctx context.Context, limit int) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	UpdateStatusAndReconcile(ctx context.Context, id int64, status string) (int64, error)
	CountByStatus(ctx context.Context, date string) ([]StatusCount, error)
}
