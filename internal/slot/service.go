package slot

import (
	"context"
	"errors"

	"tutorbook/internal/api"
	"tutorbook/internal/logger"
	"tutorbook/internal/metrics"
)

type Service interface {
	ListSlots(ctx context.Context) ([]TimeSlot, error)
	SetSlotAvailability(ctx context.Context, req SetAvailabilityRequest) error
}

type Options struct {
	// ExclusiveSlots refuses to reopen a slot that active bookings hold.
	ExclusiveSlots bool
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

func (s *service) ListSlots(ctx context.Context) ([]TimeSlot, error) {
	slots, err := s.repo.ListSlots(ctx)
	if err != nil {
		return nil, api.Datastore(err)
	}
	return slots, nil
}

func (s *service) SetSlotAvailability(ctx context.Context, req SetAvailabilityRequest) error {
	if err := api.RequireFields(req, "time and available are required"); err != nil {
		return err
	}

	available := *req.Available

	var (
		affected int64
		err      error
	)
	if s.opts.ExclusiveSlots {
		affected, err = s.repo.SetAvailabilityChecked(ctx, req.Time, available)
	} else {
		affected, err = s.repo.SetAvailability(ctx, req.Time, available)
	}
	if err != nil {
		if errors.Is(err, ErrSlotHeld) {
			metrics.RecordConflict()
			return api.Conflict("time slot has active bookings and cannot be reopened")
		}
		return api.Datastore(err)
	}

	metrics.RecordSlotUpdate(available)
	if affected == 0 {
		logger.Debug("slot availability update matched no rows", "time", req.Time)
	}

	return nil
}
