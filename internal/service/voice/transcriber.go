package voice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sandevgo/defterbot/internal/core"
	"github.com/sandevgo/defterbot/pkg/log"
)

const (
	tempDirName = "defterbot_audio"
	language    = "tr"
)

// Transcriber turns an inbound voice note into text: it resolves the media ID
// to a download URL, fetches the bytes into a temp file and runs speech to
// text over it. The temp file is removed before returning on every path.
type Transcriber struct {
	fetcher core.MediaFetcher
	stt     core.SpeechToText
	tempDir string
}

func NewTranscriber(fetcher core.MediaFetcher, stt core.SpeechToText) *Transcriber {
	return &Transcriber{
		fetcher: fetcher,
		stt:     stt,
		tempDir: filepath.Join(os.TempDir(), tempDirName),
	}
}

func (t *Transcriber) Transcribe(ctx context.Context, mediaID string) (string, error) {
	logger := log.FromCtx(ctx)

	url, err := t.fetcher.ResolveMedia(ctx, mediaID)
	if err != nil {
		return "", fmt.Errorf("resolve media: %w", err)
	}

	data, err := t.fetcher.DownloadMedia(ctx, url)
	if err != nil {
		return "", fmt.Errorf("download media: %w", err)
	}

	path, err := t.writeTempFile(data)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to remove temp audio file")
		}
	}()

	logger.Debug().
		Str("media_id", mediaID).
		Int("size", len(data)).
		Msg("transcribing voice message")

	text, err := t.stt.Transcribe(ctx, path, language)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return text, nil
}

func (t *Transcriber) writeTempFile(data []byte) (string, error) {
	if err := os.MkdirAll(t.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	path := filepath.Join(t.tempDir, uuid.NewString()+".ogg")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}
