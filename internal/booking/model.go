package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/schedule"
)

type Booking struct {
	ID      int64  `db:"id" json:"id"`
	NannyID *int64 `db:"nanny_id" json:"nanny_id,omitempty"`

	Date      string  `db:"date" json:"date"`
	EndDate   *string `db:"end_date" json:"end_date,omitempty"`
	StartTime string  `db:"start_time" json:"start_time"`
	EndTime   *string `db:"end_time" json:"end_time,omitempty"`

	Status Status `db:"status" json:"status"`

	ClientName    string `db:"client_name" json:"client_name"`
	ClientEmail   string `db:"client_email" json:"client_email"`
	ClientPhone   string `db:"client_phone" json:"client_phone"`
	Hotel         string `db:"hotel" json:"hotel"`
	ChildrenCount int    `db:"children_count" json:"children_count"`
	ChildrenAges  string `db:"children_ages" json:"children_ages"`
	Notes         string `db:"notes" json:"notes"`
	Locale        string `db:"locale" json:"locale"`

	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	ClockIn    *time.Time      `db:"clock_in" json:"clock_in,omitempty"`
	ClockOut   *time.Time      `db:"clock_out" json:"clock_out,omitempty"`

	CancelledAt        *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancellationReason *string    `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CancelledBy        *string    `db:"cancelled_by" json:"cancelled_by,omitempty"`

	ReviewToken *string `db:"review_token" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EffectiveEndDate collapses a missing end date to the start date: the
// booking's date range is always [Date, EffectiveEndDate].
func (b *Booking) EffectiveEndDate() string {
	if b.EndDate != nil && *b.EndDate != "" {
		return *b.EndDate
	}
	return b.Date
}

// Dates expands the booking into the calendar days it occupies.
func (b *Booking) Dates() []string {
	return schedule.ExpandDateRange(b.Date, b.EffectiveEndDate())
}

func (b *Booking) StartMinutes() int {
	return schedule.NormalizeStart(b.StartTime)
}

func (b *Booking) EndMinutes() int {
	if b.EndTime == nil {
		return schedule.EndOfDayMinutes
	}
	return schedule.NormalizeEnd(*b.EndTime)
}

// StartsAt resolves the scheduled start instant, used for the
// late-cancellation-fee window.
func (b *Booking) StartsAt() (time.Time, error) {
	return schedule.CombineDateTime(b.Date, b.StartTime)
}

// HoursWorked derives the billable hours from the recorded clock times.
func (b *Booking) HoursWorked() float64 {
	if b.ClockIn == nil || b.ClockOut == nil {
		return 0
	}
	return b.ClockOut.Sub(*b.ClockIn).Hours()
}
