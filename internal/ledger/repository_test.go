package ledger

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mockSQL, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mockSQL
}

var paymentTestColumns = []string{
	"id", "booking_id", "amount", "currency", "amount_eur", "method", "received_by", "note", "created_at",
}

func TestRepositoryInsertPayment(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := NewRepository(db)

	now := time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC)
	mockSQL.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments (booking_id, amount, currency, amount_eur, method, received_by, note) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)).
		WillReturnRows(sqlmock.NewRows(paymentTestColumns).
			AddRow(1, 7, "50.00", "DH", "5.00", "cash", "reception", "", now))

	p, err := repo.InsertPayment(context.Background(), &Payment{
		BookingID: 7,
		Amount:    dec("50"),
		Currency:  CurrencyDH,
		AmountEUR: dec("5"),
		Method:    "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.True(t, p.AmountEUR.Equal(dec("5")))
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestRepositoryDeletePaymentScoped(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := NewRepository(db)

	mockSQL.ExpectExec(regexp.QuoteMeta(`DELETE FROM payments WHERE id = $1 AND booking_id = $2`)).
		WithArgs(int64(9), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeletePayment(context.Background(), 9, 7))
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestRepositoryDeletePaymentWrongBooking(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := NewRepository(db)

	mockSQL.ExpectExec(regexp.QuoteMeta(`DELETE FROM payments WHERE id = $1 AND booking_id = $2`)).
		WithArgs(int64(9), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePayment(context.Background(), 9, 8)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRepositoryListPayments(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := NewRepository(db)

	now := time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC)
	mockSQL.ExpectQuery(regexp.QuoteMeta(`FROM payments WHERE booking_id = $1 ORDER BY created_at, id`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(paymentTestColumns).
			AddRow(1, 7, "100.00", "EUR", "100.00", "card", "", "", now).
			AddRow(2, 7, "50.00", "DH", "5.00", "cash", "reception", "", now))

	payments, err := repo.ListPayments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, CurrencyDH, payments[1].Currency)
}

func TestRepositoryInsertPayout(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := NewRepository(db)

	now := time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC)
	mockSQL.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payouts (booking_id, nanny_id, amount, method, paid_by, note) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "nanny_id", "amount", "method", "paid_by", "note", "created_at",
		}).AddRow(1, 7, 3, "200.00", "cash", "admin", "", now))

	p, err := repo.InsertPayout(context.Background(), &Payout{
		BookingID: 7,
		NannyID:   int64Ptr(3),
		Amount:    dec("200"),
		Method:    "cash",
		PaidBy:    "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, p.NannyID)
	assert.Equal(t, int64(3), *p.NannyID)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}
