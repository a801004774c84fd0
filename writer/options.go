package writer

import (
	"github.com/brineflow/cvector/format"
	"github.com/brineflow/cvector/internal/options"
)

// config holds construction-time choices for a Writer: the default
// compression codec applied to every field, per-path overrides, and whether
// deep validation (bytestream-number contiguity assertions) runs.
type config struct {
	defaultCodec format.CompressionType
	codecByPath  map[string]format.CompressionType
	deepValidate bool
}

func newConfig() *config {
	return &config{
		defaultCodec: format.CompressionNone,
		codecByPath:  make(map[string]format.CompressionType),
	}
}

func (c *config) codecFor(path string) format.CompressionType {
	if ct, ok := c.codecByPath[path]; ok {
		return ct
	}

	return c.defaultCodec
}

// Option configures a Writer at construction time.
type Option = options.Option[*config]

// WithDefaultCodec sets the compression codec applied to every field that
// has no per-path override.
func WithDefaultCodec(ct format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.defaultCodec = ct
	})
}

// WithCodec overrides the compression codec for one field path.
func WithCodec(path string, ct format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.codecByPath[path] = ct
	})
}

// WithDeepValidation enables the bytestream-number contiguity assertion
// (spec's compile-time-gated deep-validation mode, modeled here as a
// run-time flag per design note "Global validation mode").
func WithDeepValidation(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.deepValidate = enabled
	})
}
