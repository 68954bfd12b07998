package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

const bookingColumns = `id, nanny_id, date, end_date, start_time, end_time, status,
	client_name, client_email, client_phone, hotel, children_count, children_ages, notes, locale,
	total_price, clock_in, clock_out, cancelled_at, cancellation_reason, cancelled_by, review_token,
	created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (nanny_id, date, end_date, start_time, end_time, status,
			client_name, client_email, client_phone, hotel, children_count, children_ages, notes, locale, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.NannyID, b.Date, b.EndDate, b.StartTime, b.EndTime, b.Status,
		b.ClientName, b.ClientEmail, b.ClientPhone, b.Hotel, b.ChildrenCount, b.ChildrenAges, b.Notes, b.Locale, b.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByReviewToken(ctx context.Context, token string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE review_token = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) List(ctx context.Context, status string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY date, start_time`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListActiveForNanny(ctx context.Context, nannyID int64, excludeID int64) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE nanny_id = $1 AND id <> $2 AND status <> 'cancelled'
		ORDER BY date, start_time`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, nannyID, excludeID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch Patch) (*Booking, error) {
	set, args := buildSet(patch)
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE bookings SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		set, len(args), bookingColumns,
	)

	var b Booking
	err := r.db.GetContext(ctx, &b, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

// lockNanny serializes writers per nanny. Locking the row in nannies
// covers assignments coming from bookings that do not yet carry the
// nanny_id, which a lock over the bookings table alone would miss.
func lockNanny(ctx context.Context, tx *sqlx.Tx, nannyID int64) error {
	var locked int64
	err := tx.GetContext(ctx, &locked, `SELECT id FROM nannies WHERE id = $1 FOR UPDATE`, nannyID)
	if errors.Is(err, sql.ErrNoRows) {
		return newValidationError("nanny_id", "unknown nanny")
	}
	return err
}

func (r *repository) CreateGuarded(ctx context.Context, b *Booking, nannyID int64, guard func(existing []Booking) error) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockNanny(ctx, tx, nannyID); err != nil {
		return nil, err
	}

	existingQuery := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE nanny_id = $1 AND status <> 'cancelled'
		ORDER BY date, start_time`

	var existing []Booking
	if err := tx.SelectContext(ctx, &existing, existingQuery, nannyID); err != nil {
		return nil, err
	}

	if err := guard(existing); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO bookings (nanny_id, date, end_date, start_time, end_time, status,
			client_name, client_email, client_phone, hotel, children_count, children_ages, notes, locale, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + bookingColumns

	var created Booking
	err = tx.GetContext(ctx, &created, query,
		b.NannyID, b.Date, b.EndDate, b.StartTime, b.EndTime, b.Status,
		b.ClientName, b.ClientEmail, b.ClientPhone, b.Hotel, b.ChildrenCount, b.ChildrenAges, b.Notes, b.Locale, b.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) UpdateGuarded(ctx context.Context, id int64, patch Patch, nannyID int64, guard func(existing []Booking) error) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockNanny(ctx, tx, nannyID); err != nil {
		return nil, err
	}

	existingQuery := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE nanny_id = $1 AND id <> $2 AND status <> 'cancelled'
		ORDER BY date, start_time`

	var existing []Booking
	if err := tx.SelectContext(ctx, &existing, existingQuery, nannyID, id); err != nil {
		return nil, err
	}

	if err := guard(existing); err != nil {
		return nil, err
	}

	set, args := buildSet(patch)
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE bookings SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		set, len(args), bookingColumns,
	)

	var b Booking
	if err := tx.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &b, nil
}

func buildSet(patch Patch) (string, []interface{}) {
	cols := make([]string, 0, len(patch))
	for col := range patch {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	parts := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, col := range cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, patch[col])
	}

	return strings.Join(parts, ", "), args
}
