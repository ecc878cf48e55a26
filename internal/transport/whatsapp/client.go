package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/defterbot/internal/config"
	"github.com/sandevgo/defterbot/pkg/log"
)

const graphBaseURL = "https://graph.facebook.com/v18.0"

// Client talks to the WhatsApp Business Cloud API: outbound text messages,
// read receipts and media retrieval for voice notes.
type Client struct {
	client        *http.Client
	baseURL       string
	phoneNumberID string
	accessToken   string
}

func NewClient(cfg *config.WhatsAppConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:       graphBaseURL,
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
	}
}

type textPayload struct {
	Body string `json:"body"`
}

type sendMessageRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             *textPayload `json:"text,omitempty"`
}

type markReadRequest struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// SendText delivers a plain text message to the given phone number.
func (c *Client) SendText(ctx context.Context, to, text string) error {
	payload := sendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             &textPayload{Body: text},
	}
	if err := c.postJSON(ctx, c.messagesURL(), payload); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	log.FromCtx(ctx).Debug().Str("to", to).Msg("message sent")
	return nil
}

// MarkAsRead confirms receipt of an inbound message. Failures are logged and
// swallowed: a missing read receipt must never block the reply.
func (c *Client) MarkAsRead(ctx context.Context, messageID string) {
	payload := markReadRequest{
		MessagingProduct: "whatsapp",
		Status:           "read",
		MessageID:        messageID,
	}
	if err := c.postJSON(ctx, c.messagesURL(), payload); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("message_id", messageID).Msg("failed to mark message as read")
	}
}

// ResolveMedia exchanges a media ID for a short-lived download URL.
func (c *Client) ResolveMedia(ctx context.Context, mediaID string) (string, error) {
	data, err := c.getAuthorized(ctx, c.baseURL+"/"+mediaID)
	if err != nil {
		return "", fmt.Errorf("resolve media %s: %w", mediaID, err)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode media response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("media %s has no download url", mediaID)
	}
	return result.URL, nil
}

// DownloadMedia fetches the media bytes from a resolved URL. The URL belongs
// to the Graph CDN and still requires the access token.
func (c *Client) DownloadMedia(ctx context.Context, url string) ([]byte, error) {
	data, err := c.getAuthorized(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download media: %w", err)
	}
	return data, nil
}

func (c *Client) messagesURL() string {
	return c.baseURL + "/" + c.phoneNumberID + "/messages"
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) getAuthorized(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}
