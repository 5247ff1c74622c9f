package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/metroroute/pkg/cache"
	"github.com/matzehuels/metroroute/pkg/observability"
)

// Format is an output format for [Renderer.Render].
type Format string

// Supported output formats.
const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDOT, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported map format %q (want dot or svg)", s)
}

// Renderer renders DOT source, caching SVG output by content hash.
type Renderer struct {
	cache cache.Cache
	ttl   time.Duration
	svg   func(context.Context, string) ([]byte, error)
}

// NewRenderer creates a renderer. A nil cache disables caching; ttl 0 keeps
// entries until cleared.
func NewRenderer(c cache.Cache, ttl time.Duration) *Renderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Renderer{cache: c, ttl: ttl, svg: RenderSVG}
}

// Render returns dot in the requested format. DOT is returned unchanged.
// Cache failures are not fatal: a failed read renders again and a failed
// write still returns the output.
func (r *Renderer) Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
	default:
		return nil, fmt.Errorf("unsupported map format %q", format)
	}

	key := cache.Key("map", string(format), cache.Hash([]byte(dot)))
	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "map")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "map")

	out, err := r.svg(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, out, r.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "map", len(out))
	}
	return out, nil
}
