package notify

import "context"

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

// Notification is one outbound message. Recipient may be empty for the
// admin and business audiences; delivery resolves those from config.
type Notification struct {
	Channel   string         `json:"channel"`
	Audience  string         `json:"audience"`
	Template  string         `json:"template"`
	Locale    string         `json:"locale"`
	Recipient string         `json:"recipient"`
	Payload   map[string]any `json:"payload"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
