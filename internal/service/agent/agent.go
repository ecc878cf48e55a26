package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/defterbot/internal/accounting"
	"github.com/sandevgo/defterbot/internal/config"
	"github.com/sandevgo/defterbot/internal/core"
	"github.com/sandevgo/defterbot/internal/service/session"
	"github.com/sandevgo/defterbot/pkg/log"
)

const (
	// Rough prompt budget for gpt-4o-mini class models, leaves headroom for
	// the completion below the 128k context limit.
	contextTokenBudget = 100_000

	errorReply    = "Üzgünüm, bir hata oluştu. Lütfen tekrar deneyin."
	fallbackReply = "Üzgünüm, bir yanıt oluşturamadım."
)

const systemPromptTemplate = `Sen %s firmasının AI muhasebe asistanısın. WhatsApp üzerinden işletme sahiplerine muhasebe verileri hakkında bilgi veriyorsun.

GÖREVLER:
- Kullanıcıların faturalar, stok, alacaklar, borçlar, personel, vergiler ve tüm finansal veriler hakkındaki sorularını yanıtla
- Her zaman Türkçe konuş, profesyonel ama samimi ol
- Cevapları WhatsApp için uygun şekilde kısa ve öz tut
- Matematiksel formül veya hesaplama süreci gösterme, sadece sonuç ver
- Önceki konuşma context'ini hatırla

ÖNEMLİ: Kompleks sorular için birden fazla fonksiyon çağrısı yapabilirsin.
Örnek: "En kalabalık faturaların detayını ver" sorusunda önce faturaları listele, sonra en yüksek tutarlı olanların detaylarını getir.

Kullanıcıya cevap verirken:
- Direkt fonksiyon sonuçlarını göster
- Kendi hesaplama yapma, fonksiyonları kullan
- Emoji kullanabilirsin ama abartma
- Sayıları Türk Lirası formatında göster

Firma Özeti: %s`

// Agent runs the conversational loop for one inbound message: it maintains the
// per-sender session, lets the model call accounting functions and returns the
// final text to send back.
type Agent struct {
	provider      core.AIProvider
	svc           *accounting.Service
	store         *session.Store
	tools         []core.Tool
	windowSize    int
	maxIterations int
	maxTokens     int
	now           func() time.Time
}

func New(provider core.AIProvider, svc *accounting.Service, store *session.Store, cfg *config.AppConfig) *Agent {
	return &Agent{
		provider:      provider,
		svc:           svc,
		store:         store,
		tools:         toolCatalogue(),
		windowSize:    cfg.ContextWindowSize,
		maxIterations: cfg.MaxToolIterations,
		maxTokens:     cfg.MaxResponseTokens,
		now:           time.Now,
	}
}

// ProcessMessage handles one user turn. It never returns an error: failures
// collapse into an apology so the user always gets a reply.
func (a *Agent) ProcessMessage(ctx context.Context, sender, text string) string {
	logger := log.FromCtx(ctx)

	s := a.store.Get(sender)
	s.Lock()
	defer s.Unlock()

	now := a.now()
	if a.store.Expired(s, now) {
		s.Messages = []core.Message{{
			Role:    core.RoleSystem,
			Content: a.systemPrompt(),
		}}
		logger.Info().Str("sender", sender).Msg("session reset, starting fresh conversation")
	}
	s.LastActivity = now

	s.Messages = append(s.Messages, core.Message{
		Role:    core.RoleUser,
		Content: text,
	})

	reply, err := a.runToolLoop(ctx, s)
	if err != nil {
		logger.Error().Err(err).Str("sender", sender).Msg("agent turn failed")
		return errorReply
	}

	s.Messages = session.Truncate(s.Messages, a.windowSize)

	if reply == "" {
		return fallbackReply
	}
	return reply
}

func (a *Agent) runToolLoop(ctx context.Context, s *session.Session) (string, error) {
	logger := log.FromCtx(ctx)

	msg, err := a.chat(ctx, s)
	if err != nil {
		return "", err
	}
	s.Messages = append(s.Messages, msg)

	for iteration := 0; len(msg.ToolCalls) > 0 && iteration < a.maxIterations; iteration++ {
		for _, call := range msg.ToolCalls {
			if call.Type != "function" {
				continue
			}
			logger.Debug().
				Str("function", call.Function.Name).
				Str("arguments", call.Function.Arguments).
				Msg("executing function")

			result := executeFunction(a.svc, call.Function.Name, call.Function.Arguments)
			s.Messages = append(s.Messages, core.Message{
				Role:       core.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}

		msg, err = a.chat(ctx, s)
		if err != nil {
			return "", err
		}
		s.Messages = append(s.Messages, msg)
	}

	return msg.Content, nil
}

func (a *Agent) chat(ctx context.Context, s *session.Session) (core.Message, error) {
	history := session.TrimToBudget(s.Messages, contextTokenBudget)
	return a.provider.Chat(ctx, history, a.tools, a.maxTokens)
}

func (a *Agent) systemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, a.svc.CompanyName(), a.svc.DataContext())
}
