package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/booking"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/metrics"
)

type Service interface {
	AddPayment(ctx context.Context, bookingID int64, req PaymentRequest) (*Payment, error)
	DeletePayment(ctx context.Context, bookingID, paymentID int64) error
	ListPayments(ctx context.Context, bookingID int64) ([]Payment, error)

	AddPayout(ctx context.Context, bookingID int64, req PayoutRequest) (*Payout, error)
	DeletePayout(ctx context.Context, bookingID, payoutID int64) error
	ListPayouts(ctx context.Context, bookingID int64) ([]Payout, error)

	Balance(ctx context.Context, bookingID int64) (*Balance, error)
}

type PaymentRequest struct {
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Currency   string           `json:"currency" binding:"required"`
	AmountEUR  *decimal.Decimal `json:"amount_eur"`
	Method     string           `json:"method"`
	ReceivedBy string           `json:"received_by"`
	Note       string           `json:"note"`
}

type PayoutRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method"`
	PaidBy string          `json:"paid_by"`
	Note   string          `json:"note"`
}

// ExpectedPayFunc computes what a completed shift owes the nanny, in
// dirhams. Injected so the rate policy lives outside the ledger.
type ExpectedPayFunc func(b *booking.Booking) decimal.Decimal

// defaultHourlyRateDH is the flat shift rate used when no policy is wired.
var defaultHourlyRateDH = decimal.NewFromInt(50)

func DefaultExpectedPay(b *booking.Booking) decimal.Decimal {
	return decimal.NewFromFloat(b.HoursWorked()).Mul(defaultHourlyRateDH)
}

type service struct {
	repo        Repository
	bookings    booking.Repository
	expectedPay ExpectedPayFunc
}

func NewService(repo Repository, bookings booking.Repository, expectedPay ExpectedPayFunc) Service {
	if expectedPay == nil {
		expectedPay = DefaultExpectedPay
	}
	return &service{repo: repo, bookings: bookings, expectedPay: expectedPay}
}

func (s *service) AddPayment(ctx context.Context, bookingID int64, req PaymentRequest) (*Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if req.Currency != CurrencyEUR && req.Currency != CurrencyDH {
		return nil, ErrUnknownCurrency
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	// The conversion is the caller's call: EUR payments are their own
	// conversion, anything else without one folds as zero until corrected.
	amountEUR := decimal.Zero
	switch {
	case req.AmountEUR != nil:
		amountEUR = *req.AmountEUR
	case req.Currency == CurrencyEUR:
		amountEUR = req.Amount
	}

	created, err := s.repo.InsertPayment(ctx, &Payment{
		BookingID:  bookingID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		AmountEUR:  amountEUR,
		Method:     req.Method,
		ReceivedBy: req.ReceivedBy,
		Note:       req.Note,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(created.Currency)
	return created, nil
}

func (s *service) DeletePayment(ctx context.Context, bookingID, paymentID int64) error {
	return s.repo.DeletePayment(ctx, paymentID, bookingID)
}

func (s *service) ListPayments(ctx context.Context, bookingID int64) ([]Payment, error) {
	return s.repo.ListPayments(ctx, bookingID)
}

func (s *service) AddPayout(ctx context.Context, bookingID int64, req PayoutRequest) (*Payout, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.InsertPayout(ctx, &Payout{
		BookingID: bookingID,
		NannyID:   b.NannyID,
		Amount:    req.Amount,
		Method:    req.Method,
		PaidBy:    req.PaidBy,
		Note:      req.Note,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayout()
	return created, nil
}

func (s *service) DeletePayout(ctx context.Context, bookingID, payoutID int64) error {
	return s.repo.DeletePayout(ctx, payoutID, bookingID)
}

func (s *service) ListPayouts(ctx context.Context, bookingID int64) ([]Payout, error) {
	return s.repo.ListPayouts(ctx, bookingID)
}

// Balance folds the committed rows. There is no cached balance column to
// drift out of sync; deleting an entry restores the previous balance.
func (s *service) Balance(ctx context.Context, bookingID int64) (*Balance, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.ListPayments(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.repo.ListPayouts(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	paidEUR := decimal.Zero
	for _, p := range payments {
		paidEUR = paidEUR.Add(p.AmountEUR)
	}

	paidOut := decimal.Zero
	for _, p := range payouts {
		paidOut = paidOut.Add(p.Amount)
	}

	expected := s.expectedPay(b)

	return &Balance{
		BookingID:     bookingID,
		TotalPrice:    b.TotalPrice,
		PaidEUR:       paidEUR,
		Outstanding:   b.TotalPrice.Sub(paidEUR),
		ExpectedPayDH: expected,
		PaidOutDH:     paidOut,
		PayoutBalance: expected.Sub(paidOut),
	}, nil
}
