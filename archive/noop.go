package archive

// NoOpCodec stores chunk-cache payloads uncompressed. It is the default
// when a Manager's chunk cache is enabled without naming a backend.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (c NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
