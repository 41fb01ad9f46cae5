package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lic-events/vbs-api/internal/config"
)

func newTestClient(endpoint string) *Client {
	return NewClient(&config.SMSConfig{
		Endpoint: endpoint,
		APIKey:   "test-key",
		Sender:   "LIC VBS",
	})
}

func TestClient_Send(t *testing.T) {
	t.Run("submits the message as a form post", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "LIC VBS", r.PostForm.Get("sender"))
			assert.Equal(t, "0244000000", r.PostForm.Get("recipient[]"))
			assert.Equal(t, "hello guardian", r.PostForm.Get("message"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "success"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)

		err := client.Send(context.Background(), "0244000000", "hello guardian")
		assert.NoError(t, err)
	})

	t.Run("reports provider rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "error", "message": "insufficient balance"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)

		err := client.Send(context.Background(), "0244000000", "hello guardian")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient balance")
	})

	t.Run("fails when the provider is unreachable", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")

		err := client.Send(context.Background(), "0244000000", "hello guardian")
		assert.Error(t, err)
	})
}
