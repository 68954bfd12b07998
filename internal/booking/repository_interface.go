package booking

import "context"

// Patch maps column names to new values for a partial update. The
// repository applies keys in sorted order so generated SQL is stable.
type Patch map[string]any

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	// CreateGuarded inserts a nanny-assigned booking inside a transaction
	// that first locks the nanny row, then re-reads the nanny's
	// non-cancelled bookings and passes them to guard. A guard error aborts
	// the insert.
	CreateGuarded(ctx context.Context, b *Booking, nannyID int64, guard func(existing []Booking) error) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetByReviewToken(ctx context.Context, token string) (*Booking, error)
	List(ctx context.Context, status string) ([]Booking, error)
	ListActiveForNanny(ctx context.Context, nannyID int64, excludeID int64) ([]Booking, error)
	Update(ctx context.Context, id int64, patch Patch) (*Booking, error)
	// UpdateGuarded applies the patch under the same nanny-row lock and
	// guard re-check as CreateGuarded. Serializing on the nanny row closes
	// the check-then-act race for every writer targeting that nanny,
	// including ones whose rows are not yet assigned to her.
	UpdateGuarded(ctx context.Context, id int64, patch Patch, nannyID int64, guard func(existing []Booking) error) (*Booking, error)
}
