package slot

import (
	"context"
	"database/sql"
	"errors"

	"tutorbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrSlotHeld = errors.New("time slot has active bookings")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListSlots(ctx context.Context) ([]TimeSlot, error) {
	query := `
		SELECT id, time_slot, available
		FROM time_slots
		ORDER BY time_slot
	`

	slots := []TimeSlot{}
	err := r.db.SelectContext(ctx, &slots, query)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// SetAvailability flips the flag for the slot labelled time and returns the
// number of rows touched. An unknown label touches zero rows.
func (r *repository) SetAvailability(ctx context.Context, time string, available bool) (int64, error) {
	var affected int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		affected, err = updateAvailability(ctx, tx, time, available)
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// SetAvailabilityChecked is SetAvailability for the exclusive policy: a slot
// cannot be reopened while a non-cancelled booking holds its time.
func (r *repository) SetAvailabilityChecked(ctx context.Context, time string, available bool) (int64, error) {
	var affected int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var id int64
		err := tx.GetContext(ctx, &id, `
			SELECT id FROM time_slots
			WHERE time_slot = $1
			FOR UPDATE
		`, time)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		if available {
			held, err := db.Exists(ctx, tx, `
				SELECT EXISTS(
					SELECT 1 FROM bookings
					WHERE booking_time = $1 AND status <> 'cancelled'
				)
			`, time)
			if err != nil {
				return err
			}
			if held {
				return ErrSlotHeld
			}
		}

		affected, err = updateAvailability(ctx, tx, time, available)
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func updateAvailability(ctx context.Context, tx *sqlx.Tx, time string, available bool) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE time_slots
		SET available = $1
		WHERE time_slot = $2
	`, available, time)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
