package ledger

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, booking_id, amount, currency, amount_eur, method, received_by, note, created_at`

const payoutColumns = `id, booking_id, nanny_id, amount, method, paid_by, note, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertPayment(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (booking_id, amount, currency, amount_eur, method, received_by, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + paymentColumns

	var created Payment
	err := r.db.GetContext(ctx, &created, query,
		p.BookingID, p.Amount, p.Currency, p.AmountEUR, p.Method, p.ReceivedBy, p.Note,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) DeletePayment(ctx context.Context, id, bookingID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM payments WHERE id = $1 AND booking_id = $2`, id, bookingID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *repository) ListPayments(ctx context.Context, bookingID int64) ([]Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at, id`

	var payments []Payment
	if err := r.db.SelectContext(ctx, &payments, query, bookingID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) InsertPayout(ctx context.Context, p *Payout) (*Payout, error) {
	query := `
		INSERT INTO payouts (booking_id, nanny_id, amount, method, paid_by, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + payoutColumns

	var created Payout
	err := r.db.GetContext(ctx, &created, query,
		p.BookingID, p.NannyID, p.Amount, p.Method, p.PaidBy, p.Note,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) DeletePayout(ctx context.Context, id, bookingID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM payouts WHERE id = $1 AND booking_id = $2`, id, bookingID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *repository) ListPayouts(ctx context.Context, bookingID int64) ([]Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE booking_id = $1 ORDER BY created_at, id`

	var payouts []Payout
	if err := r.db.SelectContext(ctx, &payouts, query, bookingID); err != nil {
		return nil, err
	}

	return payouts, nil
}
