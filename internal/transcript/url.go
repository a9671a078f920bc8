package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
)

// Protocol optional, youtube.com or youtu.be, an optional watch?v= and an
// 11 character video id with nothing after it.
var videoURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/(watch\?v=)?([a-zA-Z0-9_-]{11})$`)

func IsVideoURL(s string) bool {
	return videoURLPattern.MatchString(strings.TrimSpace(s))
}

func VideoID(s string) (string, error) {
	m := videoURLPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%q is not a YouTube video URL: %w", s, apperr.ErrValidation)
	}
	return m[5], nil
}
