package core

import "context"

// AIProvider is the hosted chat-completion endpoint. It returns either a final
// assistant message or one carrying tool calls.
type AIProvider interface {
	Chat(ctx context.Context, history []Message, tools []Tool, maxTokens int) (Message, error)
}

// SpeechToText converts a downloaded audio file into text.
type SpeechToText interface {
	Transcribe(ctx context.Context, filePath, language string) (string, error)
}

// MediaFetcher resolves and downloads binary media from the messaging provider.
type MediaFetcher interface {
	ResolveMedia(ctx context.Context, mediaID string) (string, error)
	DownloadMedia(ctx context.Context, url string) ([]byte, error)
}
