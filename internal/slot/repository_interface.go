package slot

import "context"

type Repository interface {
	ListSlots(ctx context.Context) ([]TimeSlot, error)
	SetAvailability(ctx context.Context, time string, available bool) (int64, error)
	SetAvailabilityChecked(ctx context.Context, time string, available bool) (int64, error)
}
