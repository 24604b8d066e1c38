// Package compress implements the LZ77+RLE block codec used throughout the
// asset format: FEvent chunks and overlay-embedded tables are stored
// compressed with it, and every other component in this module only ever
// sees the decompressed bytes.
//
// The format is a stream of fixed-capacity 512-byte uncompressed blocks.
// Each block is a sequence of command groups: one "commands byte" packing
// four 2-bit operation codes, followed by the operand bytes each op
// consumes. Operations are a literal copy, an LZ77 back-reference, and a
// run-length-encoded repeat; 00 terminates the block early once its
// uncompressed bytes are exhausted.
//
// Compress and Decompress round-trip: Decompress(Compress(data)) == data
// for any non-empty data (Compress rejects empty input). Compress picks
// each operation greedily, taking the longest LZ77 match or RLE run at the
// current position; the result is not guaranteed to be the shortest
// possible encoding. Ties between an LZ77 match and an RLE run of equal
// length favor RLE; ties between LZ77 matches of equal length favor the
// furthest back-reference offset.
package compress
