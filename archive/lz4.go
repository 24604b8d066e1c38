package archive

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the type carries
// internal match-finding state that is expensive to re-allocate per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec sits between S2Codec and ZstdCodec: better ratio than S2 on
// typical script/text bytes, still cheap enough for a cache a Manager might
// hit on every chunk touch.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress grows its scratch buffer geometrically until lz4 stops
// complaining that it's too small; chunk cache entries don't carry an
// out-of-band uncompressed-size field the way the wire codec does. A single
// FEvent chunk is nowhere near the multi-megabyte time-series blobs this
// pool style is usually sized for, so the starting guess and cap are much
// smaller: 2x the compressed size covers every chunk shape this format
// produces, and 16MB is already far larger than any script or language
// table this format encodes.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 2
	const maxSize = 16 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
