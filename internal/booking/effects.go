package booking

import (
	"context"
	"time"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/nanny"
)

// The engine derives side effects purely from what changed in an update.
// It decides WHICH notifications fire; rendering and delivery belong to
// the dispatcher and the notifier behind it.

type EffectKind string

const (
	EffectNotify           EffectKind = "notify"
	EffectIssueReviewToken EffectKind = "issue_review_token"
)

const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
	ChannelPush     = "push"
)

const (
	AudienceClient   = "client"
	AudienceNanny    = "nanny"
	AudienceAdmin    = "admin"
	AudienceBusiness = "business"
)

// lateCancellationWindow is measured against the original scheduled start.
const lateCancellationWindow = 24 * time.Hour

type Effect struct {
	Kind      EffectKind     `json:"kind"`
	Channel   string         `json:"channel,omitempty"`
	Audience  string         `json:"audience,omitempty"`
	Template  string         `json:"template,omitempty"`
	Recipient string         `json:"recipient,omitempty"`
	Locale    string         `json:"locale,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// EffectDispatcher executes planned effects after the state change commits.
// Implementations must be best-effort: a failing effect never propagates.
type EffectDispatcher interface {
	Dispatch(ctx context.Context, effects []Effect)
}

// Change captures everything the engine needs to decide which effects a
// booking update triggers. Booking is the post-update state, with the
// cancellation stamp and review token already applied.
type Change struct {
	Booking  *Booking
	Nanny    *nanny.Nanny // resolved assignment after the update, nil when unassigned
	Previous Status

	StatusChanged     bool
	NannyAssigned     bool // nanny changed to a non-nil value
	FirstCancellation bool
	TokenIssued       bool

	ResendInvoice bool
	SendReminder  bool

	Now time.Time
}

// PlanEffects returns the ordered effect list for a change. Re-asserting
// the current status, or an update touching only unrelated fields, plans
// nothing.
func PlanEffects(ch Change) []Effect {
	var effects []Effect

	if ch.StatusChanged {
		switch ch.Booking.Status {
		case StatusConfirmed:
			effects = append(effects, confirmationEffects(ch)...)
		case StatusCancelled:
			if ch.FirstCancellation {
				effects = append(effects, cancellationEffects(ch)...)
			}
		case StatusCompleted:
			if ch.Booking.ClockOut != nil {
				effects = append(effects, completionEffects(ch)...)
			}
		}
	}

	if ch.NannyAssigned && ch.Nanny != nil {
		effects = append(effects, assignmentEffects(ch)...)
	}

	if ch.ResendInvoice && ch.Booking.Status == StatusCompleted && ch.Booking.ClockOut != nil {
		effects = append(effects, invoiceEffects(ch)...)
	}

	if ch.SendReminder && ch.Booking.Status == StatusPending && ch.Nanny != nil {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceNanny,
			Template:  "booking_reminder_nanny",
			Recipient: ch.Nanny.Email,
			Locale:    ch.Nanny.Locale,
			Payload:   basePayload(ch.Booking),
		})
	}

	return effects
}

func confirmationEffects(ch Change) []Effect {
	b := ch.Booking
	var effects []Effect

	if ch.Nanny != nil {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceNanny,
			Template:  "booking_confirmed_nanny",
			Recipient: ch.Nanny.Email,
			Locale:    ch.Nanny.Locale,
			Payload:   basePayload(b),
		})
	}

	effects = append(effects, Effect{
		Kind:     EffectNotify,
		Channel:  ChannelEmail,
		Audience: AudienceAdmin,
		Template: "booking_confirmed_admin",
		Payload:  basePayload(b),
	})

	if ch.Nanny != nil && b.ClientEmail != "" {
		payload := basePayload(b)
		payload["nanny_name"] = ch.Nanny.Name
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceClient,
			Template:  "nanny_profile",
			Recipient: b.ClientEmail,
			Locale:    b.Locale,
			Payload:   payload,
		})
	}

	if b.ClientPhone != "" {
		effects = append(effects,
			Effect{
				Kind:      EffectNotify,
				Channel:   ChannelWhatsApp,
				Audience:  AudienceClient,
				Template:  "booking_confirmed_client",
				Recipient: b.ClientPhone,
				Locale:    b.Locale,
				Payload:   basePayload(b),
			},
			Effect{
				Kind:     EffectNotify,
				Channel:  ChannelWhatsApp,
				Audience: AudienceBusiness,
				Template: "booking_confirmed_business",
				Payload:  basePayload(b),
			},
		)
	}

	return effects
}

func cancellationEffects(ch Change) []Effect {
	b := ch.Booking
	var effects []Effect

	payload := basePayload(b)
	payload["has_fee"] = hasLateCancellationFee(b, ch.Now)
	if b.CancellationReason != nil {
		payload["reason"] = *b.CancellationReason
	}

	if b.ClientEmail != "" {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceClient,
			Template:  "booking_cancelled_client",
			Recipient: b.ClientEmail,
			Locale:    b.Locale,
			Payload:   payload,
		})
	}

	if ch.Nanny != nil {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceNanny,
			Template:  "booking_cancelled_nanny",
			Recipient: ch.Nanny.Email,
			Locale:    ch.Nanny.Locale,
			Payload:   basePayload(b),
		})
	}

	effects = append(effects, Effect{
		Kind:     EffectNotify,
		Channel:  ChannelEmail,
		Audience: AudienceBusiness,
		Template: "booking_cancelled_business",
		Payload:  payload,
	})

	return effects
}

func completionEffects(ch Change) []Effect {
	effects := invoiceEffects(ch)

	b := ch.Booking
	if ch.TokenIssued {
		effects = append(effects, Effect{Kind: EffectIssueReviewToken})
	}

	token := ""
	if b.ReviewToken != nil {
		token = *b.ReviewToken
	}
	reviewPayload := basePayload(b)
	reviewPayload["review_token"] = token

	if b.ClientEmail != "" {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceClient,
			Template:  "review_request",
			Recipient: b.ClientEmail,
			Locale:    b.Locale,
			Payload:   reviewPayload,
		})
	}
	if b.ClientPhone != "" {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelWhatsApp,
			Audience:  AudienceClient,
			Template:  "review_request",
			Recipient: b.ClientPhone,
			Locale:    b.Locale,
			Payload:   reviewPayload,
		})
	}

	return effects
}

func invoiceEffects(ch Change) []Effect {
	b := ch.Booking
	var effects []Effect

	payload := basePayload(b)
	payload["hours_worked"] = b.HoursWorked()
	payload["total_price"] = b.TotalPrice.String()

	if b.ClientEmail != "" {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceClient,
			Template:  "invoice",
			Recipient: b.ClientEmail,
			Locale:    b.Locale,
			Payload:   payload,
		})
	}
	if b.ClientPhone != "" {
		effects = append(effects, Effect{
			Kind:      EffectNotify,
			Channel:   ChannelWhatsApp,
			Audience:  AudienceClient,
			Template:  "invoice",
			Recipient: b.ClientPhone,
			Locale:    b.Locale,
			Payload:   payload,
		})
	}

	effects = append(effects, Effect{
		Kind:     EffectNotify,
		Channel:  ChannelEmail,
		Audience: AudienceBusiness,
		Template: "invoice_sent_business",
		Payload:  payload,
	})

	return effects
}

func assignmentEffects(ch Change) []Effect {
	b := ch.Booking
	payload := basePayload(b)

	return []Effect{
		{
			Kind:      EffectNotify,
			Channel:   ChannelEmail,
			Audience:  AudienceNanny,
			Template:  "nanny_assigned",
			Recipient: ch.Nanny.Email,
			Locale:    ch.Nanny.Locale,
			Payload:   payload,
		},
		{
			Kind:      EffectNotify,
			Channel:   ChannelPush,
			Audience:  AudienceNanny,
			Template:  "nanny_assigned",
			Recipient: ch.Nanny.Email,
			Locale:    ch.Nanny.Locale,
			Payload:   payload,
		},
	}
}

// hasLateCancellationFee checks whether now falls within 24 hours of the
// original scheduled start. The engine only flags the fee; the amount is
// handled manually through the ledger.
func hasLateCancellationFee(b *Booking, now time.Time) bool {
	startsAt, err := b.StartsAt()
	if err != nil {
		return false
	}
	return startsAt.Sub(now) < lateCancellationWindow
}

func basePayload(b *Booking) map[string]any {
	payload := map[string]any{
		"booking_id":     b.ID,
		"date":           b.Date,
		"start_time":     b.StartTime,
		"client_name":    b.ClientName,
		"hotel":          b.Hotel,
		"children_count": b.ChildrenCount,
		"locale":         b.Locale,
	}
	if b.EndDate != nil {
		payload["end_date"] = *b.EndDate
	}
	if b.EndTime != nil {
		payload["end_time"] = *b.EndTime
	}
	return payload
}
