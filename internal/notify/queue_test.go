package notify

import (
	"context"
	"os"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestNotifier(rdb *redis.Client) *QueueNotifier {
	return &QueueNotifier{
		redis:         rdb,
		businessEmail: "bookings@callanannycare.com",
		businessPhone: "+212600000099",
		adminEmails:   []string{"admin@callanannycare.com"},
		reviewBaseURL: "https://callanannycare.com/review",
	}
}

func TestNotifyQueuesJob(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.Regexp().ExpectLPush(queueKey, `.*booking_confirmed_client.*`).SetVal(1)

	q := newTestNotifier(db)
	err := q.Notify(ctx, Notification{
		Channel:   ChannelWhatsApp,
		Audience:  AudienceClient,
		Template:  "booking_confirmed_client",
		Locale:    "fr",
		Recipient: "+33600000001",
		Payload:   map[string]any{"booking_id": int64(7)},
	})
	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestNotifyRedisDown(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.Regexp().ExpectLPush(queueKey, `.*`).SetErr(redis.ErrClosed)

	q := newTestNotifier(db)
	err := q.Notify(ctx, Notification{Channel: ChannelEmail, Template: "invoice"})
	assert.Error(t, err)
}

func TestQueueLength(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.ExpectLLen(queueKey).SetVal(4)

	q := newTestNotifier(db)
	assert.Equal(t, int64(4), q.QueueLength(ctx))
}

func TestEmailRecipientsByAudience(t *testing.T) {
	q := newTestNotifier(nil)

	assert.Equal(t, []string{"admin@callanannycare.com"},
		q.emailRecipients(Notification{Audience: AudienceAdmin}))
	assert.Equal(t, []string{"bookings@callanannycare.com"},
		q.emailRecipients(Notification{Audience: AudienceBusiness}))
	assert.Equal(t, []string{"laura@example.com"},
		q.emailRecipients(Notification{Audience: AudienceClient, Recipient: "laura@example.com"}))
	assert.Empty(t, q.emailRecipients(Notification{Audience: AudienceClient}))
}

func TestEmailRecipientsAdminFallsBackToBusiness(t *testing.T) {
	q := newTestNotifier(nil)
	q.adminEmails = nil

	assert.Equal(t, []string{"bookings@callanannycare.com"},
		q.emailRecipients(Notification{Audience: AudienceAdmin}))
}

func TestSplitEmails(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, splitEmails("a@x.com, b@x.com"))
	assert.Empty(t, splitEmails(""))
	assert.Empty(t, splitEmails(" , "))
}
