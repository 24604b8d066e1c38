package compress

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/mnl-modding/mnllib-go/bin"
	"github.com/mnl-modding/mnllib-go/internal/pool"
	"github.com/mnl-modding/mnllib-go/mnlerr"
	"github.com/mnl-modding/mnllib-go/warn"
)

const (
	blockCapacity    = 512
	maxBackrefOffset = 0xFFF
	maxMatchLength   = 17
	minMatchLength   = 2
	maxRunLength     = 257
)

const (
	opTerminator = 0
	opLiteral    = 1
	opBackref    = 2
	opRunLength  = 3
)

// Decompress inverts Compress. reporter receives non-fatal diagnostics about
// size-field mismatches between what the stream declares and what was
// actually produced; pass nil to discard them.
func Decompress(data []byte, reporter warn.Reporter) ([]byte, error) {
	if reporter == nil {
		reporter = warn.Discard
	}

	r := bytes.NewReader(data)

	uncompressedSize, err := bin.ReadVarint(r)
	if err != nil {
		return nil, err
	}
	numBlocksMinusOne, err := bin.ReadVarint(r)
	if err != nil {
		return nil, err
	}
	numBlocks := numBlocksMinusOne + 1

	if uncompressedSize == 0 && numBlocksMinusOne == 0 && r.Len() == 0 {
		return []byte{}, nil
	}

	out := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(out)
	out.Grow(int(uncompressedSize))

	for i := uint32(0); i < numBlocks; i++ {
		var sizeBuf [2]byte
		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			return nil, mnlerr.ErrTruncated
		}
		declaredBlockSize := binary.LittleEndian.Uint16(sizeBuf[:])
		blockStart := int64(len(data)) - int64(r.Len())

		if err := decompressBlock(r, out); err != nil {
			return nil, err
		}

		actualBlockSize := (int64(len(data)) - int64(r.Len())) - blockStart
		if actualBlockSize != int64(declaredBlockSize) {
			reporter(warn.Warning{
				Code:    warn.CodeBlockSizeMismatch,
				Message: "declared compressed block size does not match the actual one",
			})
		}
	}

	if uint32(out.Len()) != uncompressedSize {
		reporter(warn.Warning{
			Code:    warn.CodeUncompressedSizeMismatch,
			Message: "declared uncompressed size does not match the actual one",
		})
	}

	return append([]byte(nil), out.Bytes()...), nil
}

// decompressBlock runs the 00/01/10/11 command loop for a single block,
// appending decoded bytes to out until it sees a terminator or has consumed
// 256 commands bytes (the block's natural capacity of 1024 operations).
func decompressBlock(r *bytes.Reader, out *pool.ByteBuffer) error {
	for commandsByteIdx := 0; commandsByteIdx < 256; commandsByteIdx++ {
		commandsByte, err := r.ReadByte()
		if err != nil {
			return mnlerr.ErrTruncated
		}

		for sub := 0; sub < 4; sub++ {
			op := commandsByte & 0x03
			commandsByte >>= 2

			switch op {
			case opTerminator:
				return nil
			case opLiteral:
				b, err := r.ReadByte()
				if err != nil {
					return mnlerr.ErrTruncated
				}
				if err := out.WriteByte(b); err != nil {
					return err
				}
			case opBackref:
				var buf [2]byte
				if _, err := io.ReadFull(r, buf[:]); err != nil {
					return mnlerr.ErrTruncated
				}
				offset := int(buf[0]) | (int(buf[1]&0xF0) << 4)
				length := int(buf[1]&0x0F) + minMatchLength

				start := out.Len() - offset
				if offset == 0 || start < 0 {
					return mnlerr.ErrTruncated
				}
				for i := 0; i < length; i++ {
					if err := out.WriteByte(out.Bytes()[start+i]); err != nil {
						return err
					}
				}
			case opRunLength:
				var buf [2]byte
				if _, err := io.ReadFull(r, buf[:]); err != nil {
					return mnlerr.ErrTruncated
				}
				count := int(buf[0]) + minMatchLength
				value := buf[1]
				for i := 0; i < count; i++ {
					if err := out.WriteByte(value); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// Compress encodes data as a stream of LZ77+RLE blocks. It rejects empty
// input explicitly rather than reproduce the reference tool's degenerate
// zero-block encoding (see DESIGN.md's Open Question on this).
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, mnlerr.ErrEmptyInput
	}

	out := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(out)

	writeVarintTo(out, uint32(len(data)))

	numBlocks := (len(data) + blockCapacity - 1) / blockCapacity
	writeVarintTo(out, uint32(numBlocks-1))

	for blockNumber := 0; blockNumber < numBlocks; blockNumber++ {
		blockStart := blockNumber * blockCapacity
		blockEnd := min(blockStart+blockCapacity, len(data))
		compressBlock(out, data, blockStart, blockEnd)
	}

	return append([]byte(nil), out.Bytes()...), nil
}

func writeVarintTo(out *pool.ByteBuffer, v uint32) {
	var scratch [4]byte
	buf := bin.AppendVarint(scratch[:0], v)
	_, _ = out.Write(buf)
}

// compressBlock greedily packs [blockStart, blockEnd) of data into one
// block, backpatching the 2-byte size field once the block's true length is
// known.
func compressBlock(out *pool.ByteBuffer, data []byte, blockStart, blockEnd int) {
	sizeFieldPos := out.Len()
	out.B = append(out.B, 0x00, 0x00)

	blockSize := blockEnd - blockStart
	offset := 0
	lastCommandNumber := -1

	for offset < blockSize {
		commandsBytePos := out.Len()
		out.B = append(out.B, 0x00)
		var commandsByte byte

		for commandNumber := 0; commandNumber < 4; commandNumber++ {
			if offset >= blockSize {
				break
			}
			pos := blockStart + offset

			lz77Length, lz77Offset := findBestBackref(data, pos, offset, blockSize)
			runLength := findRunLength(data, pos, offset, blockSize)

			bestLength := max(lz77Length, runLength)

			var op byte
			switch {
			case bestLength <= 1:
				op = opLiteral
				out.B = append(out.B, data[pos])
			case lz77Length > runLength:
				op = opBackref
				out.B = append(out.B,
					byte(lz77Offset&0xFF),
					byte(lz77Length-minMatchLength)|byte((lz77Offset&0xF00)>>4),
				)
				bestLength = lz77Length
			default:
				op = opRunLength
				out.B = append(out.B, byte(runLength-minMatchLength), data[pos])
				bestLength = runLength
			}

			commandsByte |= op << (commandNumber * 2)
			offset += bestLength
			lastCommandNumber = commandNumber
		}

		out.B[commandsBytePos] = commandsByte
	}

	if lastCommandNumber == 3 {
		out.B = append(out.B, 0x00)
	}

	compressedSize := out.Len() - sizeFieldPos - 2
	binary.LittleEndian.PutUint16(out.B[sizeFieldPos:], uint16(compressedSize))
}

// findBestBackref searches offsets 1..min(pos,0xFFF) (nearest first is
// tried last, so equal-length ties resolve to the furthest offset, matching
// the reference encoder's strictly-greater update rule).
func findBestBackref(data []byte, pos, blockOffset, blockSize int) (length, backOffset int) {
	maxOffset := min(pos, maxBackrefOffset)

	for off := maxOffset; off >= 1; off-- {
		l := 0
		for l < maxMatchLength && l < off && blockOffset+l < blockSize {
			if data[pos+l] != data[pos-off+l] {
				break
			}
			l++
		}
		if l > length {
			length = l
			backOffset = off
		}
	}

	return length, backOffset
}

func findRunLength(data []byte, pos, blockOffset, blockSize int) int {
	first := data[pos]
	count := 1
	for blockOffset+count < blockSize && count < maxRunLength {
		if data[pos+count] != first {
			break
		}
		count++
	}

	return count
}
