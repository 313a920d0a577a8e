package booking

import (
	"context"
	"errors"

	"tutorbook/internal/api"
	"tutorbook/internal/logger"
	"tutorbook/internal/metrics"
)

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (int64, error)
	ListBookings(ctx context.Context, date string) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, req UpdateStatusRequest) error
	GetSummary(ctx context.Context, date string) (*Summary, error)
}

type Options struct {
	// ExclusiveSlots makes a booking hold its slot: creation checks and
	// closes the slot, status changes reopen or close it again.
	ExclusiveSlots bool
}

func (o Options) policy() string {
	if o.ExclusiveSlots {
		return "exclusive"
	}
	return "loose"
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	return &service{
		repo: repo,
		opts: opts,
	}
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (int64, error) {
	if err := api.RequireFields(req, "all fields are required"); err != nil {
		return 0, err
	}

	var (
		id  int64
		err error
	)
	if s.opts.ExclusiveSlots {
		id, err = s.repo.CreateExclusiveBooking(ctx, req)
	} else {
		id, err = s.repo.CreateBooking(ctx, req)
	}
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) || errors.Is(err, ErrSlotTaken) {
			metrics.RecordConflict()
			return 0, api.Conflict(err.Error())
		}
		return 0, api.Datastore(err)
	}

	metrics.RecordBookingCreated(s.opts.policy())
	logger.Info("booking created",
		"booking_id", id,
		"date", req.Date,
		"time", req.Time,
		"policy", s.opts.policy(),
	)

	return id, nil
}

// ListBookings returns the bookings of one date ordered by time, or, with an
// empty date, the RecentLimit latest bookings by date and time descending.
func (s *service) ListBookings(ctx context.Context, date string) ([]Booking, error) {
	var (
		bookings []Booking
		err      error
	)
	if date != "" {
		bookings, err = s.repo.ListBookingsByDate(ctx, date)
	} else {
		bookings, err = s.repo.ListRecentBookings(ctx, RecentLimit)
	}
	if err != nil {
		return nil, api.Datastore(err)
	}

	return bookings, nil
}

func (s *service) UpdateBookingStatus(ctx context.Context, req UpdateStatusRequest) error {
	if err := api.RequireFields(req, "id and status are required"); err != nil {
		return err
	}

	var (
		affected int64
		err      error
	)
	if s.opts.ExclusiveSlots {
		affected, err = s.repo.UpdateStatusAndReconcile(ctx, req.ID, req.Status)
	} else {
		affected, err = s.repo.UpdateStatus(ctx, req.ID, req.Status)
	}
	if err != nil {
		return api.Datastore(err)
	}

	metrics.RecordStatusUpdate(req.Status)
	if affected == 0 {
		logger.Debug("booking status update matched no rows", "booking_id", req.ID)
	}

	return nil
}

func (s *service) GetSummary(ctx context.Context, date string) (*Summary, error) {
	counts, err := s.repo.CountByStatus(ctx, date)
	if err != nil {
		return nil, api.Datastore(err)
	}

	summary := &Summary{
		Date: date,
		ByStatus: map[string]int{
			StatusPending:   0,
			StatusConfirmed: 0,
			StatusCancelled: 0,
		},
	}
	for _, c := range counts {
		summary.ByStatus[c.Status] = c.Count
		summary.Total += c.Count
	}

	return summary, nil
}
