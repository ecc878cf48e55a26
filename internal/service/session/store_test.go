package session

import (
	"testing"
	"time"

	"github.com/sandevgo/defterbot/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestStoreGetReturnsSameSession(t *testing.T) {
	store := NewStore(5 * time.Minute)

	a := store.Get("905551112233")
	b := store.Get("905551112233")
	assert.Same(t, a, b)

	other := store.Get("905559998877")
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, store.Len())
}

func TestStoreClear(t *testing.T) {
	store := NewStore(5 * time.Minute)

	s := store.Get("905551112233")
	s.Messages = append(s.Messages, core.Message{Role: core.RoleSystem, Content: "talimatlar"})
	store.Clear("905551112233")

	fresh := store.Get("905551112233")
	assert.NotSame(t, s, fresh)
	assert.Empty(t, fresh.Messages)
}

func TestExpired(t *testing.T) {
	store := NewStore(5 * time.Minute)
	now := time.Date(2025, 10, 28, 12, 0, 0, 0, time.UTC)

	s := &Session{}
	assert.True(t, store.Expired(s, now), "empty session must be reseeded")

	s.Messages = []core.Message{{Role: core.RoleSystem, Content: "talimatlar"}}
	s.LastActivity = now.Add(-4 * time.Minute)
	assert.False(t, store.Expired(s, now))

	s.LastActivity = now.Add(-6 * time.Minute)
	assert.True(t, store.Expired(s, now), "idle beyond timeout must be reseeded")
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	store := NewStore(50 * time.Millisecond)

	s := store.Get("905551112233")
	s.Messages = []core.Message{{Role: core.RoleSystem, Content: "talimatlar"}}

	time.Sleep(120 * time.Millisecond)

	fresh := store.Get("905551112233")
	assert.NotSame(t, s, fresh, "reaped session must not be reused")
}

func TestStoreKeepsActiveSessions(t *testing.T) {
	store := NewStore(150 * time.Millisecond)

	s := store.Get("905551112233")
	s.Messages = []core.Message{{Role: core.RoleSystem, Content: "talimatlar"}}

	// keep the sender active well past the timeout, never idle longer
	// than 50ms between turns
	for i := 0; i < 6; i++ {
		time.Sleep(50 * time.Millisecond)
		s = store.Get("905551112233")
	}

	assert.Len(t, s.Messages, 1, "a continuously active session must keep its history")
}

func TestTruncateKeepsSystemMessage(t *testing.T) {
	msgs := []core.Message{{Role: core.RoleSystem, Content: "talimatlar"}}
	for i := 0; i < 30; i++ {
		msgs = append(msgs, core.Message{Role: core.RoleUser, Content: "soru"})
	}

	got := Truncate(msgs, 20)
	assert.Len(t, got, 21)
	assert.Equal(t, core.RoleSystem, got[0].Role)
}

func TestTruncateShortSequenceUntouched(t *testing.T) {
	msgs := []core.Message{
		{Role: core.RoleSystem, Content: "talimatlar"},
		{Role: core.RoleUser, Content: "soru"},
		{Role: core.RoleAssistant, Content: "cevap"},
	}
	assert.Equal(t, msgs, Truncate(msgs, 20))
}

func TestTruncateWithoutSystemMessage(t *testing.T) {
	var msgs []core.Message
	for i := 0; i < 25; i++ {
		msgs = append(msgs, core.Message{Role: core.RoleUser, Content: "soru"})
	}
	assert.Len(t, Truncate(msgs, 20), 20)
}

func TestTrimToBudgetKeepsSystemAndNewest(t *testing.T) {
	msgs := []core.Message{{Role: core.RoleSystem, Content: "talimatlar"}}
	for i := 0; i < 10; i++ {
		msgs = append(msgs, core.Message{Role: core.RoleUser, Content: "uzun bir soru metni uzun bir soru metni"})
	}

	got := TrimToBudget(msgs, 30)
	assert.Equal(t, core.RoleSystem, got[0].Role)
	assert.GreaterOrEqual(t, len(got), 2)
	assert.Less(t, len(got), len(msgs))
	assert.Equal(t, msgs[len(msgs)-1], got[len(got)-1])
}

func TestTokenEstimateGrowsWithContent(t *testing.T) {
	short := TokenEstimate([]core.Message{{Role: core.RoleUser, Content: "selam"}})
	long := TokenEstimate([]core.Message{{Role: core.RoleUser, Content: "bu ayki faturaların durumunu ve bekleyen tahsilatları özetler misin"}})
	assert.Greater(t, long, short)
}
