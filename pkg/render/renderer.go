package render

import (
	"context"
)

// Renderer converts a Screen into a byte representation (HTML, plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, screen Screen, options RenderOptions) ([]byte, error)
}
