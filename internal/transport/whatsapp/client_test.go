package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/defterbot/internal/config"
)

func newTestClient(url string) *Client {
	c := NewClient(&config.WhatsAppConfig{
		PhoneNumberID: "123456",
		AccessToken:   "token-abc",
	})
	c.baseURL = url
	return c
}

func TestSendText(t *testing.T) {
	var captured sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/123456/messages", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.out"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendText(context.Background(), "905551112233", "Merhaba!")

	require.NoError(t, err)
	assert.Equal(t, "whatsapp", captured.MessagingProduct)
	assert.Equal(t, "905551112233", captured.To)
	assert.Equal(t, "text", captured.Type)
	require.NotNil(t, captured.Text)
	assert.Equal(t, "Merhaba!", captured.Text.Body)
}

func TestSendTextErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendText(context.Background(), "905551112233", "Merhaba!")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestMarkAsReadSwallowsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var captured markReadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "read", captured.Status)
		assert.Equal(t, "wamid.in", captured.MessageID)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	// must not panic or propagate the failure
	client.MarkAsRead(context.Background(), "wamid.in")
}

func TestResolveMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media-789", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/audio.ogg","mime_type":"audio/ogg"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	url, err := client.ResolveMedia(context.Background(), "media-789")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/audio.ogg", url)
}

func TestResolveMediaMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ResolveMedia(context.Background(), "media-789")
	assert.ErrorContains(t, err, "no download url")
}

func TestDownloadMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("ogg-bytes"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	data, err := client.DownloadMedia(context.Background(), server.URL+"/file")

	require.NoError(t, err)
	assert.Equal(t, []byte("ogg-bytes"), data)
}
