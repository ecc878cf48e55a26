package session

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/defterbot/internal/core"
)

// Truncate caps the retained sequence to the leading system message plus the
// most recent max messages.
func Truncate(msgs []core.Message, max int) []core.Message {
	if len(msgs) == 0 || max <= 0 {
		return msgs
	}

	if msgs[0].Role == core.RoleSystem {
		rest := msgs[1:]
		if len(rest) <= max {
			return msgs
		}
		out := make([]core.Message, 0, max+1)
		out = append(out, msgs[0])
		return append(out, rest[len(rest)-max:]...)
	}

	if len(msgs) <= max {
		return msgs
	}
	return msgs[len(msgs)-max:]
}

// TrimToBudget drops the oldest non-system messages until the token estimate
// fits the budget. The system message and the newest message always survive.
func TrimToBudget(msgs []core.Message, budget int) []core.Message {
	for len(msgs) > 2 && TokenEstimate(msgs) > budget {
		if msgs[0].Role == core.RoleSystem {
			msgs = append(msgs[:1:1], msgs[2:]...)
		} else {
			msgs = msgs[1:]
		}
	}
	return msgs
}

// TokenEstimate estimates the prompt size of a message sequence.
func TokenEstimate(msgs []core.Message) int {
	total := 0
	for _, m := range msgs {
		total += countTokens(m.Content) + 4 // per-message protocol overhead
		for _, tc := range m.ToolCalls {
			total += countTokens(tc.Function.Name) + countTokens(tc.Function.Arguments)
		}
	}
	return total
}

var (
	tokenizerOnce sync.Once
	tokenizer     *tiktoken.Tiktoken
)

func countTokens(text string) int {
	if text == "" {
		return 0
	}

	tokenizerOnce.Do(func() {
		tk, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			tokenizer = tk
		}
	})

	if tokenizer == nil {
		// offline fallback, ~4 bytes per token
		return len(text)/4 + 1
	}
	return len(tokenizer.Encode(text, nil, nil))
}
