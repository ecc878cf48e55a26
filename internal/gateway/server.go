package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sandevgo/defterbot/internal/config"
	"github.com/sandevgo/defterbot/pkg/log"
)

// MessageSender delivers outbound messages and read receipts.
type MessageSender interface {
	SendText(ctx context.Context, to, text string) error
	MarkAsRead(ctx context.Context, messageID string)
}

// Responder produces the reply for one inbound user message.
type Responder interface {
	ProcessMessage(ctx context.Context, sender, text string) string
}

// VoiceTranscriber turns a voice note media ID into text.
type VoiceTranscriber interface {
	Transcribe(ctx context.Context, mediaID string) (string, error)
}

// Server is the HTTP gateway: webhook verification, inbound message intake
// and the health endpoint.
type Server struct {
	httpSrv     *http.Server
	port        int
	verifyToken string
	sender      MessageSender
	agent       Responder
	voice       VoiceTranscriber
	limiter     *rateLimiter
}

func NewServer(appCfg *config.AppConfig, waCfg *config.WhatsAppConfig, sender MessageSender, agent Responder, voice VoiceTranscriber) *Server {
	return &Server{
		port:        appCfg.Port,
		verifyToken: waCfg.VerifyToken,
		sender:      sender,
		agent:       agent,
		voice:       voice,
		limiter:     newRateLimiter(appCfg.RateLimitPerMin),
	}
}

func (s *Server) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	s.routes(engine)

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().Int("port", s.port).Msg("gateway listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) routes(engine *gin.Engine) {
	engine.GET("/webhook", s.handleVerify)
	engine.POST("/webhook", s.handleWebhook)
	engine.GET("/health", s.handleHealth)
}

func (s *Server) reply(ctx context.Context, to, text string) {
	if err := s.sender.SendText(ctx, to, text); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("to", to).Msg("failed to send reply")
	}
}

// requestLogger attaches the application logger to each request context so
// handlers can use log.FromCtx.
func requestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithContext(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
