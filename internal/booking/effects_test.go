package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/nanny"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func testBooking() *Booking {
	return &Booking{
		ID:          7,
		NannyID:     int64Ptr(3),
		Date:        "2024-06-10",
		StartTime:   "9:00",
		EndTime:     strPtr("13:00"),
		Status:      StatusConfirmed,
		ClientName:  "Laura",
		ClientEmail: "laura@example.com",
		ClientPhone: "+33600000001",
		Hotel:       "Riad Dar Anika",
		Locale:      "fr",
	}
}

func testNanny() *nanny.Nanny {
	return &nanny.Nanny{
		ID:     3,
		Name:   "Amina",
		Email:  "amina@example.com",
		Phone:  "+212600000001",
		Locale: "fr",
	}
}

func templatesOf(effects []Effect) []string {
	var out []string
	for _, e := range effects {
		if e.Kind == EffectNotify {
			out = append(out, e.Channel+":"+e.Template)
		} else {
			out = append(out, string(e.Kind))
		}
	}
	return out
}

func TestPlanEffectsConfirmation(t *testing.T) {
	b := testBooking()
	effects := PlanEffects(Change{
		Booking:       b,
		Nanny:         testNanny(),
		Previous:      StatusPending,
		StatusChanged: true,
		Now:           time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, []string{
		"email:booking_confirmed_nanny",
		"email:booking_confirmed_admin",
		"email:nanny_profile",
		"whatsapp:booking_confirmed_client",
		"whatsapp:booking_confirmed_business",
	}, templatesOf(effects))

	// Locale is passed through unchanged.
	assert.Equal(t, "fr", effects[2].Locale)
	assert.Equal(t, "laura@example.com", effects[2].Recipient)
}

func TestPlanEffectsConfirmationWithoutContactDetails(t *testing.T) {
	b := testBooking()
	b.ClientEmail = ""
	b.ClientPhone = ""

	effects := PlanEffects(Change{
		Booking:       b,
		Nanny:         testNanny(),
		Previous:      StatusPending,
		StatusChanged: true,
		Now:           time.Now(),
	})

	assert.Equal(t, []string{
		"email:booking_confirmed_nanny",
		"email:booking_confirmed_admin",
	}, templatesOf(effects))
}

func TestPlanEffectsNoStatusChangeNoEffects(t *testing.T) {
	effects := PlanEffects(Change{
		Booking:  testBooking(),
		Nanny:    testNanny(),
		Previous: StatusConfirmed,
		Now:      time.Now(),
	})

	assert.Empty(t, effects)
}

func TestPlanEffectsCancellationFeeWindow(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantFee bool
	}{
		{
			name:    "10 hours before start",
			now:     time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC),
			wantFee: true,
		},
		{
			name:    "48 hours before start",
			now:     time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC),
			wantFee: false,
		},
		{
			name:    "after start",
			now:     time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			wantFee: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBooking()
			b.Status = StatusCancelled
			b.CancellationReason = strPtr("client request")

			effects := PlanEffects(Change{
				Booking:           b,
				Nanny:             testNanny(),
				Previous:          StatusConfirmed,
				StatusChanged:     true,
				FirstCancellation: true,
				Now:               tt.now,
			})

			require.NotEmpty(t, effects)
			assert.Equal(t, "booking_cancelled_client", effects[0].Template)
			assert.Equal(t, tt.wantFee, effects[0].Payload["has_fee"])
			assert.Equal(t, "client request", effects[0].Payload["reason"])

			assert.Equal(t, []string{
				"email:booking_cancelled_client",
				"email:booking_cancelled_nanny",
				"email:booking_cancelled_business",
			}, templatesOf(effects))
		})
	}
}

func TestPlanEffectsRepeatedCancellationEmitsNothing(t *testing.T) {
	b := testBooking()
	b.Status = StatusCancelled

	effects := PlanEffects(Change{
		Booking:           b,
		Nanny:             testNanny(),
		Previous:          StatusConfirmed,
		StatusChanged:     true,
		FirstCancellation: false,
		Now:               time.Now(),
	})

	assert.Empty(t, effects)
}

func TestPlanEffectsCompletion(t *testing.T) {
	clockIn := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2024, 6, 10, 13, 30, 0, 0, time.UTC)

	b := testBooking()
	b.Status = StatusCompleted
	b.ClockIn = &clockIn
	b.ClockOut = &clockOut
	b.ReviewToken = strPtr("tok-123")

	effects := PlanEffects(Change{
		Booking:       b,
		Nanny:         testNanny(),
		Previous:      StatusConfirmed,
		StatusChanged: true,
		TokenIssued:   true,
		Now:           clockOut,
	})

	assert.Equal(t, []string{
		"email:invoice",
		"whatsapp:invoice",
		"email:invoice_sent_business",
		"issue_review_token",
		"email:review_request",
		"whatsapp:review_request",
	}, templatesOf(effects))

	assert.Equal(t, 4.5, effects[0].Payload["hours_worked"])
	assert.Equal(t, "tok-123", effects[4].Payload["review_token"])
	assert.Equal(t, "tok-123", effects[5].Payload["review_token"])
}

func TestPlanEffectsCompletionWithoutClockOut(t *testing.T) {
	b := testBooking()
	b.Status = StatusCompleted

	effects := PlanEffects(Change{
		Booking:       b,
		Nanny:         testNanny(),
		Previous:      StatusConfirmed,
		StatusChanged: true,
		Now:           time.Now(),
	})

	assert.Empty(t, effects)
}

func TestPlanEffectsReassignment(t *testing.T) {
	effects := PlanEffects(Change{
		Booking:       testBooking(),
		Nanny:         testNanny(),
		Previous:      StatusConfirmed,
		NannyAssigned: true,
		Now:           time.Now(),
	})

	assert.Equal(t, []string{
		"email:nanny_assigned",
		"push:nanny_assigned",
	}, templatesOf(effects))
}

func TestPlanEffectsResendInvoiceOnly(t *testing.T) {
	clockIn := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	b := testBooking()
	b.Status = StatusCompleted
	b.ClockIn = &clockIn
	b.ClockOut = &clockOut

	effects := PlanEffects(Change{
		Booking:       b,
		Nanny:         testNanny(),
		Previous:      StatusCompleted,
		ResendInvoice: true,
		Now:           time.Now(),
	})

	assert.Equal(t, []string{
		"email:invoice",
		"whatsapp:invoice",
		"email:invoice_sent_business",
	}, templatesOf(effects))
}

func TestPlanEffectsSendReminderOnly(t *testing.T) {
	b := testBooking()
	b.Status = StatusPending

	effects := PlanEffects(Change{
		Booking:      b,
		Nanny:        testNanny(),
		Previous:     StatusPending,
		SendReminder: true,
		Now:          time.Now(),
	})

	require.Len(t, effects, 1)
	assert.Equal(t, "booking_reminder_nanny", effects[0].Template)
	assert.Equal(t, "amina@example.com", effects[0].Recipient)
}

func TestPlanEffectsSendReminderRequiresAssignedNanny(t *testing.T) {
	b := testBooking()
	b.Status = StatusPending
	b.NannyID = nil

	effects := PlanEffects(Change{
		Booking:      b,
		Nanny:        nil,
		Previous:     StatusPending,
		SendReminder: true,
		Now:          time.Now(),
	})

	assert.Empty(t, effects)
}
