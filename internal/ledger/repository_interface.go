package ledger

import "context"

type Repository interface {
	InsertPayment(ctx context.Context, p *Payment) (*Payment, error)
	// DeletePayment removes the entry only when both id and bookingID match;
	// a mismatched pair is ErrEntryNotFound, never someone else's row.
	DeletePayment(ctx context.Context, id, bookingID int64) error
	ListPayments(ctx context.Context, bookingID int64) ([]Payment, error)

	InsertPayout(ctx context.Context, p *Payout) (*Payout, error)
	DeletePayout(ctx context.Context, id, bookingID int64) error
	ListPayouts(ctx context.Context, bookingID int64) ([]Payout, error)
}
