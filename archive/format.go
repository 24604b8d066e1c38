package archive

// CompressionType identifies the backend used for the container manager's
// optional chunk cache. It has no bearing on the on-disk format's own
// block-level LZ77+RLE codec (see package compress), which is not
// configurable — it is what ships inside overlay 3 and FEvent.dat.
type CompressionType uint8

const (
	// CompressionNone disables the cache's secondary compression and stores
	// decoded chunks as-is.
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
