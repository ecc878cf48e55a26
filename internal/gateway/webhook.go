package gateway

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sandevgo/defterbot/pkg/log"
)

const (
	voiceListeningNotice = "🎤 Ses kaydınızı dinliyorum..."
	voiceEmptyNotice     = "Üzgünüm, ses kaydınızı anlayamadım. Lütfen tekrar deneyin veya yazılı mesaj gönderin."
	voiceErrorNotice     = "Ses kaydınızı işlerken bir hata oluştu. Lütfen tekrar deneyin."
)

type webhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string       `json:"field"`
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	Messages []inboundMessage `json:"messages"`
	Statuses []inboundStatus  `json:"statuses"`
}

type inboundMessage struct {
	From  string      `json:"from"`
	ID    string      `json:"id"`
	Type  string      `json:"type"`
	Text  *inboundTxt `json:"text"`
	Audio *mediaRef   `json:"audio"`
	Voice *mediaRef   `json:"voice"`
}

type inboundTxt struct {
	Body string `json:"body"`
}

type mediaRef struct {
	ID string `json:"id"`
}

type inboundStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// handleVerify answers the subscription handshake: it echoes the challenge
// when the verify token matches and rejects everything else.
func (s *Server) handleVerify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken {
		log.FromCtx(c.Request.Context()).Info().Msg("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}

	log.FromCtx(c.Request.Context()).Warn().Str("mode", mode).Msg("webhook verification failed")
	c.Status(http.StatusForbidden)
}

func (s *Server) handleWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	logger := log.FromCtx(ctx)

	var envelope webhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		// unrecognized payloads are not-found; 500 stays reserved for
		// genuine processing failures
		logger.Warn().Err(err).Msg("failed to decode webhook payload")
		c.Status(http.StatusNotFound)
		return
	}

	if envelope.Object != "whatsapp_business_account" {
		c.Status(http.StatusNotFound)
		return
	}

	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}
			for _, msg := range change.Value.Messages {
				s.processMessage(c, msg)
			}
			for _, status := range change.Value.Statuses {
				logger.Debug().Str("message_id", status.ID).Str("status", status.Status).Msg("message status update")
			}
		}
	}

	c.Status(http.StatusOK)
}

func (s *Server) processMessage(c *gin.Context, msg inboundMessage) {
	ctx := c.Request.Context()
	logger := log.FromCtx(ctx)

	if !s.limiter.allow(msg.From) {
		logger.Warn().Str("from", msg.From).Msg("sender rate limited, dropping message")
		return
	}

	s.sender.MarkAsRead(ctx, msg.ID)

	var text string
	switch msg.Type {
	case "text":
		if msg.Text == nil {
			return
		}
		text = msg.Text.Body
		logger.Info().Str("from", msg.From).Msg("received text message")

	case "audio", "voice":
		mediaID := msg.mediaID()
		if mediaID == "" {
			logger.Warn().Str("from", msg.From).Msg("voice message has no media id")
			return
		}
		logger.Info().Str("from", msg.From).Str("media_id", mediaID).Msg("received voice message")

		if err := s.sender.SendText(ctx, msg.From, voiceListeningNotice); err != nil {
			logger.Error().Err(err).Msg("failed to send listening notice")
		}

		transcribed, err := s.voice.Transcribe(ctx, mediaID)
		if err != nil {
			logger.Error().Err(err).Str("from", msg.From).Msg("voice transcription failed")
			s.reply(ctx, msg.From, voiceErrorNotice)
			return
		}
		if strings.TrimSpace(transcribed) == "" {
			s.reply(ctx, msg.From, voiceEmptyNotice)
			return
		}
		text = transcribed

	default:
		logger.Debug().Str("from", msg.From).Str("type", msg.Type).Msg("ignoring unsupported message type")
		return
	}

	if strings.TrimSpace(text) == "" {
		return
	}

	answer := s.agent.ProcessMessage(ctx, msg.From, text)
	s.reply(ctx, msg.From, answer)
}

func (m inboundMessage) mediaID() string {
	if m.Audio != nil && m.Audio.ID != "" {
		return m.Audio.ID
	}
	if m.Voice != nil {
		return m.Voice.ID
	}
	return ""
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
