package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyEUR = "EUR"
	CurrencyDH  = "DH"
)

// Payment is money received from the client. Amount is in its own
// currency; AmountEUR carries the caller-supplied conversion so balances
// fold in a single currency.
type Payment struct {
	ID         int64           `db:"id" json:"id"`
	BookingID  int64           `db:"booking_id" json:"booking_id"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Currency   string          `db:"currency" json:"currency"`
	AmountEUR  decimal.Decimal `db:"amount_eur" json:"amount_eur"`
	Method     string          `db:"method" json:"method"`
	ReceivedBy string          `db:"received_by" json:"received_by"`
	Note       string          `db:"note" json:"note"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Payout is money paid to the nanny, always in dirhams. NannyID is a
// snapshot of the booking's assignment at insert time; reassigning the
// booking later does not rewrite history.
type Payout struct {
	ID        int64           `db:"id" json:"id"`
	BookingID int64           `db:"booking_id" json:"booking_id"`
	NannyID   *int64          `db:"nanny_id" json:"nanny_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Method    string          `db:"method" json:"method"`
	PaidBy    string          `db:"paid_by" json:"paid_by"`
	Note      string          `db:"note" json:"note"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Balance is a fold over the committed ledger rows for one booking.
type Balance struct {
	BookingID     int64           `json:"booking_id"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaidEUR       decimal.Decimal `json:"paid_eur"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	ExpectedPayDH decimal.Decimal `json:"expected_pay_dh"`
	PaidOutDH     decimal.Decimal `json:"paid_out_dh"`
	PayoutBalance decimal.Decimal `json:"payout_balance"`
}
