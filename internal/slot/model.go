package slot

// TimeSlot is a bookable time-of-day label. Rows are provisioned outside
// the service; only the availability flag changes here.
type TimeSlot struct {
	ID        int64  `db:"id" json:"id" example:"1"`
	Time      string `db:"time_slot" json:"time" example:"10:00"`
	Available bool   `db:"available" json:"available" example:"true"`
}

type SetAvailabilityRequest struct {
	Time      string `json:"time" validate:"required" example:"10:00"`
	Available *bool  `json:"available" validate:"required" example:"false"`
}

type ListSlotsResponse struct {
	Slots []TimeSlot `json:"slots"`
}
