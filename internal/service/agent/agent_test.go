package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/defterbot/internal/accounting"
	"github.com/sandevgo/defterbot/internal/config"
	"github.com/sandevgo/defterbot/internal/core"
	"github.com/sandevgo/defterbot/internal/service/session"
)

type scriptedProvider struct {
	responses []core.Message
	err       error
	histories [][]core.Message
}

func (p *scriptedProvider) Chat(_ context.Context, history []core.Message, _ []core.Tool, _ int) (core.Message, error) {
	snapshot := make([]core.Message, len(history))
	copy(snapshot, history)
	p.histories = append(p.histories, snapshot)

	if p.err != nil {
		return core.Message{}, p.err
	}
	if len(p.responses) == 0 {
		return core.Message{Role: core.RoleAssistant, Content: "bitti"}, nil
	}
	next := p.responses[0]
	p.responses = p.responses[1:]
	return next, nil
}

func toolCallMsg(id, name, args string) core.Message {
	return core.Message{
		Role: core.RoleAssistant,
		ToolCalls: []core.ToolCall{{
			ID:   id,
			Type: "function",
			Function: core.FunctionCall{
				Name:      name,
				Arguments: args,
			},
		}},
	}
}

func newTestAgent(t *testing.T, provider core.AIProvider) *Agent {
	t.Helper()
	svc, err := accounting.New()
	require.NoError(t, err)

	cfg := &config.AppConfig{
		SessionTimeout:    5 * time.Minute,
		ContextWindowSize: 20,
		MaxToolIterations: 5,
		MaxResponseTokens: 1500,
	}
	return New(provider, svc, session.NewStore(cfg.SessionTimeout), cfg)
}

func TestProcessMessagePlainAnswer(t *testing.T) {
	provider := &scriptedProvider{responses: []core.Message{
		{Role: core.RoleAssistant, Content: "Merhaba, size nasıl yardımcı olabilirim?"},
	}}
	a := newTestAgent(t, provider)

	reply := a.ProcessMessage(context.Background(), "905551112233", "selam")
	assert.Equal(t, "Merhaba, size nasıl yardımcı olabilirim?", reply)

	// first call carries the system prompt and the user message
	require.Len(t, provider.histories, 1)
	history := provider.histories[0]
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleSystem, history[0].Role)
	assert.Contains(t, history[0].Content, "Tekno Elektronik Ticaret Ltd. Şti.")
	assert.Equal(t, "selam", history[1].Content)
}

func TestProcessMessageExecutesToolCall(t *testing.T) {
	provider := &scriptedProvider{responses: []core.Message{
		toolCallMsg("call_1", "get_invoices", `{"filter":"beklemede"}`),
		{Role: core.RoleAssistant, Content: "3 bekleyen faturanız var."},
	}}
	a := newTestAgent(t, provider)

	reply := a.ProcessMessage(context.Background(), "905551112233", "bekleyen faturalar")
	assert.Equal(t, "3 bekleyen faturanız var.", reply)

	require.Len(t, provider.histories, 2)
	second := provider.histories[1]
	last := second[len(second)-1]
	assert.Equal(t, core.RoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, "FT-2025-004")
}

func TestProcessMessageUnknownFunction(t *testing.T) {
	provider := &scriptedProvider{responses: []core.Message{
		toolCallMsg("call_1", "get_weather", `{}`),
		{Role: core.RoleAssistant, Content: "tamam"},
	}}
	a := newTestAgent(t, provider)

	a.ProcessMessage(context.Background(), "905551112233", "hava durumu")

	require.Len(t, provider.histories, 2)
	second := provider.histories[1]
	last := second[len(second)-1]
	assert.Equal(t, "❌ Bilinmeyen fonksiyon: get_weather", last.Content)
}

func TestProcessMessageIterationCeiling(t *testing.T) {
	// The model keeps asking for tools forever; the loop must stop after the
	// configured cap and fall back.
	responses := make([]core.Message, 0, 8)
	for i := 0; i < 8; i++ {
		responses = append(responses, toolCallMsg("call_x", "get_summary", `{}`))
	}
	provider := &scriptedProvider{responses: responses}
	a := newTestAgent(t, provider)

	reply := a.ProcessMessage(context.Background(), "905551112233", "özet")
	assert.Equal(t, fallbackReply, reply)
	assert.Len(t, provider.histories, 6) // initial call + 5 iterations
}

func TestProcessMessageProviderError(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("upstream 500")}
	a := newTestAgent(t, provider)

	reply := a.ProcessMessage(context.Background(), "905551112233", "selam")
	assert.Equal(t, errorReply, reply)
}

func TestProcessMessageEmptyAnswerFallsBack(t *testing.T) {
	provider := &scriptedProvider{responses: []core.Message{
		{Role: core.RoleAssistant, Content: ""},
	}}
	a := newTestAgent(t, provider)

	reply := a.ProcessMessage(context.Background(), "905551112233", "selam")
	assert.Equal(t, fallbackReply, reply)
}

func TestProcessMessageReseedsAfterIdle(t *testing.T) {
	provider := &scriptedProvider{}
	a := newTestAgent(t, provider)

	current := time.Now()
	a.now = func() time.Time { return current }

	a.ProcessMessage(context.Background(), "905551112233", "ilk mesaj")

	current = current.Add(10 * time.Minute)
	a.ProcessMessage(context.Background(), "905551112233", "ikinci mesaj")

	require.Len(t, provider.histories, 2)
	second := provider.histories[1]
	require.Len(t, second, 2) // fresh system prompt + new user message only
	assert.Equal(t, core.RoleSystem, second[0].Role)
	assert.Equal(t, "ikinci mesaj", second[1].Content)
}

func TestProcessMessageKeepsContextWithinWindow(t *testing.T) {
	provider := &scriptedProvider{}
	a := newTestAgent(t, provider)

	for i := 0; i < 30; i++ {
		a.ProcessMessage(context.Background(), "905551112233", "mesaj")
	}

	s := a.store.Get("905551112233")
	assert.LessOrEqual(t, len(s.Messages), 21)
	assert.Equal(t, core.RoleSystem, s.Messages[0].Role)
}

func TestConcurrentTurnsSameSender(t *testing.T) {
	provider := &scriptedProvider{}
	a := newTestAgent(t, provider)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			a.ProcessMessage(context.Background(), "905551112233", "mesaj")
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	s := a.store.Get("905551112233")
	assert.Equal(t, core.RoleSystem, s.Messages[0].Role)
}
