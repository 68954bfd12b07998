package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppSenderPostsMessage(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewWhatsAppSender(srv.URL, "wa-token")
	require.NoError(t, sender.Send("+33600000001", "hello"))

	assert.Equal(t, "Bearer wa-token", gotAuth)
	assert.Equal(t, "+33600000001", gotBody["to"])
}

func TestWhatsAppSenderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewWhatsAppSender(srv.URL, "bad-token")
	assert.Error(t, sender.Send("+33600000001", "hello"))
}

func TestPushSenderPostsMessage(t *testing.T) {
	var gotKey string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewPushSender(srv.URL, "push-key")
	require.NoError(t, sender.Send("amina@example.com", "New assignment", "details"))

	assert.Equal(t, "push-key", gotKey)
	assert.Equal(t, "New assignment", gotBody["title"])
}
