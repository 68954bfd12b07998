package dispatch

import (
	"context"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/booking"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/metrics"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/notify"
)

// Dispatcher executes planned effects after a booking write commits.
// Delivery is best-effort and at-most-once: a failing effect is logged
// and counted, never retried here and never surfaced to the caller. The
// queue behind the notifier owns retries.
type Dispatcher struct {
	notifier notify.Notifier
}

func New(notifier notify.Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier}
}

func (d *Dispatcher) Dispatch(ctx context.Context, effects []booking.Effect) {
	for _, effect := range effects {
		d.dispatchOne(ctx, effect)
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, effect booking.Effect) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Panic dispatching %s: %v", effect.Template, r)
			metrics.RecordEffect(effect.Template, "panic")
		}
	}()

	switch effect.Kind {
	case booking.EffectIssueReviewToken:
		// The token itself was persisted with the status change; this
		// marker only exists so issuance shows up in the counters.
		metrics.RecordEffect(string(booking.EffectIssueReviewToken), "ok")

	case booking.EffectNotify:
		err := d.notifier.Notify(ctx, notify.Notification{
			Channel:   effect.Channel,
			Audience:  effect.Audience,
			Template:  effect.Template,
			Locale:    effect.Locale,
			Recipient: effect.Recipient,
			Payload:   effect.Payload,
		})
		if err != nil {
			logger.Errorf("Failed to dispatch %s via %s: %v", effect.Template, effect.Channel, err)
			metrics.RecordEffect(effect.Template, "error")
			return
		}
		metrics.RecordEffect(effect.Template, "ok")

	default:
		logger.Errorf("Unknown effect kind: %s", effect.Kind)
	}
}
