package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("PUT", "/admin/bookings/:bookingID", "200", 0.12)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("PUT", "/admin/bookings/:bookingID", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordTransition(t *testing.T) {
	BookingTransitionsTotal.Reset()

	RecordTransition("pending", "confirmed")
	RecordTransition("pending", "confirmed")
	RecordTransition("confirmed", "cancelled")

	confirmed := testutil.ToFloat64(BookingTransitionsTotal.WithLabelValues("pending", "confirmed"))
	cancelled := testutil.ToFloat64(BookingTransitionsTotal.WithLabelValues("confirmed", "cancelled"))

	assert.Equal(t, float64(2), confirmed)
	assert.Equal(t, float64(1), cancelled)
}

func TestRecordConflict(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callananny_booking_conflicts_total_test",
			Help: "Total number of rejected writes due to scheduling conflicts",
		},
	)

	oldCounter := BookingConflictsTotal
	BookingConflictsTotal = testCounter
	defer func() { BookingConflictsTotal = oldCounter }()

	RecordConflict()
	RecordConflict()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter))
}

func TestRecordEffect(t *testing.T) {
	EffectsDispatchedTotal.Reset()

	RecordEffect("booking_confirmed_nanny", "ok")
	RecordEffect("booking_confirmed_nanny", "failed")
	RecordEffect("review_request", "ok")

	ok := testutil.ToFloat64(EffectsDispatchedTotal.WithLabelValues("booking_confirmed_nanny", "ok"))
	failed := testutil.ToFloat64(EffectsDispatchedTotal.WithLabelValues("booking_confirmed_nanny", "failed"))
	review := testutil.ToFloat64(EffectsDispatchedTotal.WithLabelValues("review_request", "ok"))

	assert.Equal(t, float64(1), ok)
	assert.Equal(t, float64(1), failed)
	assert.Equal(t, float64(1), review)
}

func TestRecordNotification(t *testing.T) {
	NotificationsTotal.Reset()

	RecordNotification("email", "sent")
	RecordNotification("whatsapp", "failed")

	sent := testutil.ToFloat64(NotificationsTotal.WithLabelValues("email", "sent"))
	failed := testutil.ToFloat64(NotificationsTotal.WithLabelValues("whatsapp", "failed"))

	assert.Equal(t, float64(1), sent)
	assert.Equal(t, float64(1), failed)
}

func TestRecordPayment(t *testing.T) {
	PaymentsRecordedTotal.Reset()

	RecordPayment("EUR")
	RecordPayment("DH")
	RecordPayment("DH")

	eur := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("EUR"))
	dh := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("DH"))

	assert.Equal(t, float64(1), eur)
	assert.Equal(t, float64(2), dh)
}

func TestNotificationQueueLength(t *testing.T) {
	NotificationQueueLength.Set(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(NotificationQueueLength))

	NotificationQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(NotificationQueueLength))
}
