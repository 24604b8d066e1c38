// Package archive provides the pluggable secondary-compression backends for
// container.Manager's optional chunk cache. When enabled, a Manager keeps a
// copy of each FEvent chunk's raw pre-parse bytes, keyed by their hash
// (internal/hash) and compressed with one of these codecs (or stored as-is
// with NoOpCodec). The cache holds these copies in addition to the parsed
// chunks.
//
// This is independent of the mandatory on-disk LZ77+RLE codec in package
// compress: that one is the wire format; this one is an in-memory cache
// optimization a caller can turn on or leave off.
package archive

import "fmt"

// Compressor compresses a chunk-cache payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a chunk-cache payload.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; container.Manager.EnableChunkCache takes
// one of these.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for the given backend.
func CreateCodec(compressionType CompressionType) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("archive: invalid chunk cache compression: %s", compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a shared built-in Codec instance for the given backend.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("archive: unsupported chunk cache compression: %s", compressionType)
}
