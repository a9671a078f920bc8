package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

// Fetcher resolves a video URL to its caption text.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}

// captionSource is the part of the YouTube client the fetcher needs.
type captionSource interface {
	Captions(ctx context.Context, videoID, lang string) ([]string, error)
}

type YouTubeFetcher struct {
	source captionSource
	lang   string
}

var _ Fetcher = (*YouTubeFetcher)(nil)

func NewYouTubeFetcher(lang string) *YouTubeFetcher {
	return newFetcher(&youtubeSource{client: &youtube.Client{}}, lang)
}

func newFetcher(source captionSource, lang string) *YouTubeFetcher {
	if lang == "" {
		lang = "en"
	}
	return &YouTubeFetcher{source: source, lang: lang}
}

// Fetch joins every caption segment with single spaces. Any failure of the
// caption source is reported as apperr.ErrFetch.
func (f *YouTubeFetcher) Fetch(ctx context.Context, videoURL string) (string, error) {
	log := config.WithContext(ctx)

	id, err := VideoID(videoURL)
	if err != nil {
		return "", err
	}

	segments, err := f.source.Captions(ctx, id, f.lang)
	if err != nil {
		log.WithError(err).WithField("video_id", id).Warn("Caption retrieval failed")
		return "", fmt.Errorf("captions for video %s: %v: %w", id, err, apperr.ErrFetch)
	}

	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("video %s has an empty transcript: %w", id, apperr.ErrFetch)
	}

	text := strings.Join(parts, " ")
	log.WithField("video_id", id).WithField("chars", len(text)).Info("Transcript fetched")
	return text, nil
}

type youtubeSource struct {
	client *youtube.Client
}

func (s *youtubeSource) Captions(ctx context.Context, videoID, lang string) ([]string, error) {
	video, err := s.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, err
	}

	transcript, err := s.client.GetTranscriptCtx(ctx, video, lang)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, fmt.Errorf("captions are disabled: %w", err)
		}
		return nil, err
	}

	out := make([]string, 0, len(transcript))
	for _, seg := range transcript {
		out = append(out, seg.Text)
	}
	return out, nil
}
