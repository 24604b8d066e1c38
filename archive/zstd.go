package archive

// ZstdCodec trades compression speed for ratio; pick it when a Manager will
// hold many decoded chunks in its cache at once and memory matters more than
// per-chunk latency.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
