package booking

import (
	"context"
	"database/sql"
	"errors"

	"tutorbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotUnavailable = errors.New("time slot is not available")
	ErrSlotTaken       = errors.New("time slot is already booked for this date")
)

const bookingColumns = `
	id, name, email, phone,
	TO_CHAR(booking_date, 'YYYY-MM-DD') AS booking_date,
	booking_time, status, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, req CreateBookingRequest) (int64, error) {
	var id int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		id, err = insertBooking(ctx, tx, req)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// CreateExclusiveBooking inserts the booking only if its slot is open and no
// other live booking holds the same date and time. Slots are bare time
// labels, so a live booking at 10:00 on any date closes 10:00 for every
// date until it is cancelled; the per-date check only guards against a
// flag changed outside this service. The slot row stays locked until the
// flag has been reconciled, so the insert and the flip commit together.
func (r *repository) CreateExclusiveBooking(ctx context.Context, req CreateBookingRequest) (int64, error) {
	var id int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		found, available, err := lockSlot(ctx, tx, req.Time)
		if err != nil {
			return err
		}
		if !found || !available {
			return ErrSlotUnavailable
		}

		taken, err := db.Exists(ctx, tx, `
			SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE booking_date = $1 AND booking_time = $2 AND status <> 'cancelled'
			)
		`, req.Date, req.Time)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		id, err = insertBooking(ctx, tx, req)
		if err != nil {
			return err
		}

		return reconcileSlot(ctx, tx, req.Time)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) ListBookingsByDate(ctx context.Context, date string) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date = $1
		ORDER BY booking_time
	`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListRecentBookings(ctx context.Context, limit int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date DESC, booking_time DESC
		LIMIT $1
	`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, limit)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus overwrites the status unconditionally. An unknown id touches
// zero rows and is not an error.
func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	var affected int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		affected, err = updateStatus(ctx, tx, id, status)
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// UpdateStatusAndReconcile updates the status and recomputes the flag of the
// slot the booking sits in, inside one transaction.
func (r *repository) UpdateStatusAndReconcile(ctx context.Context, id int64, status string) (int64, error) {
	var affected int64

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var bookingTime string
		err := tx.GetContext(ctx, &bookingTime, `SELECT booking_time FROM bookings WHERE id = $1`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		// Lock order matches CreateExclusiveBooking: slot first, then bookings.
		found, _, err := lockSlot(ctx, tx, bookingTime)
		if err != nil {
			return err
		}

		affected, err = updateStatus(ctx, tx, id, status)
		if err != nil {
			return err
		}

		if !found {
			return nil
		}
		return reconcileSlot(ctx, tx, bookingTime)
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func (r *repository) CountByStatus(ctx context.Context, date string) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM bookings
	`
	args := []interface{}{}

	if date != "" {
		query += " WHERE booking_date = $1"
		args = append(args, date)
	}

	query += " GROUP BY status ORDER BY status"

	counts := []StatusCount{}
	err := r.db.SelectContext(ctx, &counts, query, args...)
	if err != nil {
		return nil, err
	}

	return counts, nil
}

func insertBooking(ctx context.Context, tx *sqlx.Tx, req CreateBookingRequest) (int64, error) {
	var id int64
	err := tx.GetContext(ctx, &id, `
		INSERT INTO bookings (name, email, phone, booking_date, booking_time, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id
	`, req.Name, req.Email, req.Phone, req.Date, req.Time)
	return id, err
}

func updateStatus(ctx context.Context, tx *sqlx.Tx, id int64, status string) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, status, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func lockSlot(ctx context.Context, tx *sqlx.Tx, time string) (found, available bool, err error) {
	err = tx.GetContext(ctx, &available, `
		SELECT available FROM time_slots
		WHERE time_slot = $1
		FOR UPDATE
	`, time)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, available, nil
}

// reconcileSlot marks the slot unavailable exactly when a non-cancelled
// booking exists at its time, on any date.
func reconcileSlot(ctx context.Context, tx *sqlx.Tx, time string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE time_slots
		SET available = NOT EXISTS(
			SELECT 1 FROM bookings
			WHERE booking_time = time_slots.time_slot AND status <> 'cancelled'
		)
		WHERE time_slot = $1
	`, time)
	return err
}
