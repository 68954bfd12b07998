package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/config"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/metrics"
)

const (
	queueKey       = "notifications"
	failedQueueKey = "notifications:failed"
	maxTries       = 3
)

type job struct {
	Notification
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// QueueNotifier pushes notifications through redis so a slow SMTP server
// or messaging gateway never blocks a booking write. A worker drains the
// queue; failed jobs retry up to maxTries before landing on the failed
// list for manual inspection.
type QueueNotifier struct {
	redis    *redis.Client
	email    *EmailSender
	whatsapp *WhatsAppSender
	push     *PushSender

	businessEmail string
	businessPhone string
	adminEmails   []string
	reviewBaseURL string
}

func NewQueueNotifier(cfg *config.Config) *QueueNotifier {
	return &QueueNotifier{
		redis: redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		}),
		email:         NewEmailSender(cfg.EmailFrom, cfg.EmailFromName, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		whatsapp:      NewWhatsAppSender(cfg.WhatsAppAPIURL, cfg.WhatsAppToken),
		push:          NewPushSender(cfg.PushGatewayURL, cfg.PushAPIKey),
		businessEmail: cfg.BusinessEmail,
		businessPhone: cfg.BusinessPhone,
		adminEmails:   splitEmails(cfg.AdminEmails),
		reviewBaseURL: cfg.ReviewBaseURL,
	}
}

func (q *QueueNotifier) Notify(ctx context.Context, n Notification) error {
	data, err := json.Marshal(job{Notification: n, Created: time.Now()})
	if err != nil {
		logger.Errorf("Failed to marshal notification: %v", err)
		return err
	}

	if err := q.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue %s notification: %v", n.Template, err)
		return err
	}

	logger.Infof("Notification queued: %s via %s", n.Template, n.Channel)
	return nil
}

func (q *QueueNotifier) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
			q.processNext(ctx)
		}
	}
}

func (q *QueueNotifier) processNext(ctx context.Context) {
	result, err := q.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}
	metrics.NotificationQueueLength.Set(float64(q.QueueLength(ctx)))

	var j job
	if err := json.Unmarshal([]byte(result[1]), &j); err != nil {
		logger.Errorf("Bad notification data: %v", err)
		return
	}

	j.Tries++
	if err := q.deliver(j.Notification); err != nil {
		logger.Errorf("Failed to deliver %s via %s: %v", j.Template, j.Channel, err)
		metrics.RecordNotification(j.Channel, "error")

		if j.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(j)
			q.redis.LPush(context.Background(), queueKey, data)
		} else {
			logger.Errorf("Notification %s failed after %d attempts", j.Template, maxTries)
			q.saveFailed(j, err)
		}
		return
	}

	metrics.RecordNotification(j.Channel, "sent")
}

func (q *QueueNotifier) deliver(n Notification) error {
	if n.Template == "review_request" && q.reviewBaseURL != "" {
		if token, ok := n.Payload["review_token"].(string); ok && token != "" {
			n.Payload["review_token"] = strings.TrimRight(q.reviewBaseURL, "/") + "/" + token
		}
	}

	msg := render(n.Template, n.Locale, n.Payload)

	switch n.Channel {
	case ChannelEmail:
		for _, to := range q.emailRecipients(n) {
			if err := q.email.Send(to, msg.Subject, msg.Body); err != nil {
				return err
			}
		}
		return nil

	case ChannelWhatsApp:
		to := n.Recipient
		if n.Audience == AudienceBusiness {
			to = q.businessPhone
		}
		if to == "" {
			return nil
		}
		return q.whatsapp.Send(to, msg.Body)

	case ChannelPush:
		if n.Recipient == "" {
			return nil
		}
		return q.push.Send(n.Recipient, msg.Subject, msg.Body)
	}

	logger.Errorf("Unknown notification channel: %s", n.Channel)
	return nil
}

func (q *QueueNotifier) emailRecipients(n Notification) []string {
	switch n.Audience {
	case AudienceAdmin:
		if len(q.adminEmails) > 0 {
			return q.adminEmails
		}
		return []string{q.businessEmail}
	case AudienceBusiness:
		return []string{q.businessEmail}
	default:
		if n.Recipient == "" {
			return nil
		}
		return []string{n.Recipient}
	}
}

func (q *QueueNotifier) saveFailed(j job, err error) {
	failed := map[string]interface{}{
		"job":   j,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	q.redis.LPush(context.Background(), failedQueueKey, data)
}

func (q *QueueNotifier) QueueLength(ctx context.Context) int64 {
	length, _ := q.redis.LLen(ctx, queueKey).Result()
	return length
}

func (q *QueueNotifier) Close() error {
	return q.redis.Close()
}

func splitEmails(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
