package archive

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders. klauspost/compress/zstd is
// allocation-free after warmup only when a decoder is reused across calls,
// and this cache decodes one small chunk at a time rather than one big
// stream, so pooling matters more here than it would for a single bulk
// decode. Lowmem trades a little throughput for a smaller per-decoder
// footprint, which is the whole point of turning this cache on in the
// first place.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			panic(fmt.Sprintf("archive: failed to create zstd decoder: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool mirrors zstdDecoderPool. Level is best-compression rather
// than the usual speed/ratio default: ZstdCodec is the backend a caller
// reaches for specifically to shrink the cache's memory footprint, so
// ratio wins over encode latency here.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBestCompression),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("archive: failed to create zstd encoder: %v", err))
		}
		return encoder
	},
}

func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("archive: zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
