package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PushSender posts to the mobile push gateway used by the nanny app.
type PushSender struct {
	gatewayURL string
	apiKey     string
	client     *http.Client
}

func NewPushSender(gatewayURL, apiKey string) *PushSender {
	return &PushSender{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *PushSender) Send(to, title, body string) error {
	payload, err := json.Marshal(map[string]string{
		"recipient": to,
		"title":     title,
		"body":      body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway returned %d", resp.StatusCode)
	}

	return nil
}
