package transcript

import "context"

// CaptionFunc lets black-box tests stand in for the YouTube client.
type CaptionFunc func(ctx context.Context, videoID, lang string) ([]string, error)

func (f CaptionFunc) Captions(ctx context.Context, videoID, lang string) ([]string, error) {
	return f(ctx, videoID, lang)
}

func NewFetcherWithSource(source CaptionFunc, lang string) *YouTubeFetcher {
	return newFetcher(source, lang)
}
