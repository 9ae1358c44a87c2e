package profile

import (
	"context"
)

type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, documentText string) (map[string]any, error)
}
