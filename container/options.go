package container

import (
	"github.com/mnl-modding/mnllib-go/archive"
	"github.com/mnl-modding/mnllib-go/internal/options"
	"github.com/mnl-modding/mnllib-go/warn"
)

// Option configures a Manager at construction time.
type Option = options.Option[*Manager]

// WithReporter routes every warning a Manager's Load/Save calls produce to
// r instead of warn.Discard.
func WithReporter(r warn.Reporter) Option {
	return options.NoError(func(m *Manager) {
		m.reporter = r
	})
}

// WithChunkCache enables the opt-in in-memory chunk cache, backed by
// codec (see Manager.EnableChunkCache). It never affects on-disk framing;
// it keeps a codec-compressed copy of each chunk's raw bytes for
// RawChunkBytes.
func WithChunkCache(codec archive.Codec) Option {
	return options.NoError(func(m *Manager) {
		m.EnableChunkCache(codec)
	})
}
