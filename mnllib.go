// Package mnllib decodes and re-encodes the Mario & Luigi handheld RPG
// binary asset formats: compressed overlay blocks, FEvent command scripts,
// command-parameter metadata tables, and dialog/menu text tables.
//
// # Core Features
//
//   - Byte-exact LZ77+RLE block codec matching the game's own compressor
//   - FEvent script decoding/encoding, driven by per-context command metadata
//   - Dialog and system text table decoding/encoding
//   - A container.Manager binding all of the above to fixed overlay addresses
//
// # Basic Usage
//
// Loading a full extraction and inspecting a script:
//
//	import "github.com/mnl-modding/mnllib-go"
//
//	manager, err := mnllib.NewManager()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.LoadAll(); err != nil {
//	    log.Fatal(err)
//	}
//
//	chunk := manager.FEventChunks[0][0]
//	if chunk.Kind == container.ChunkScript {
//	    fmt.Println(len(chunk.Script.Subroutines))
//	}
//
// Compressing and decompressing a standalone buffer:
//
//	compressed, err := mnllib.Compress(raw)
//	restored, err := mnllib.Decompress(compressed, nil)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around container and
// compress. For fine-grained control — a custom
// warn.Reporter, a chunk cache codec, or decoding a script/table without a
// Manager — use those packages directly.
package mnllib

import (
	"github.com/mnl-modding/mnllib-go/compress"
	"github.com/mnl-modding/mnllib-go/container"
	"github.com/mnl-modding/mnllib-go/warn"
)

// NewManager builds an empty container.Manager; call LoadAll (or the
// individual Load* methods) to populate it.
//
// Example:
//
//	manager, err := mnllib.NewManager(container.WithReporter(warn.DefaultReporter))
func NewManager(opts ...container.Option) (*container.Manager, error) {
	return container.NewManager(opts...)
}

// Compress encodes data as a stream of LZ77+RLE blocks, the mandatory
// on-disk format used by overlay data and FEvent chunks. It rejects empty
// input with mnlerr.ErrEmptyInput.
func Compress(data []byte) ([]byte, error) {
	return compress.Compress(data)
}

// Decompress restores the original bytes from a compressed stream.
// Diagnostics about malformed-but-recoverable streams (declared-size
// mismatches) are routed to reporter; pass nil to discard them.
func Decompress(data []byte, reporter warn.Reporter) ([]byte, error) {
	return compress.Decompress(data, reporter)
}
