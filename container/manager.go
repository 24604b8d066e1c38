package container

import (
	"fmt"
	"io"
	"os"

	"github.com/mnl-modding/mnllib-go/archive"
	"github.com/mnl-modding/mnllib-go/endian"
	"github.com/mnl-modding/mnllib-go/gameaddr"
	"github.com/mnl-modding/mnllib-go/internal/options"
	"github.com/mnl-modding/mnllib-go/param"
	"github.com/mnl-modding/mnllib-go/warn"
)

// byteOrder is the engine every reader/writer in this package uses to cross
// the boundary between raw overlay/FEvent bytes and in-memory fields.
var byteOrder = endian.LittleEndian()

// FEventOffsetTriple is one entry of overlay 3's FEvent offset table: three
// absolute file offsets into FEvent.dat, one per chunk slot.
type FEventOffsetTriple [3]uint32

// Manager binds the fixed overlay addresses in package gameaddr to
// in-memory script, command-parameter-metadata, and language-table state,
// mirroring the single load/save-all object the original extraction tool
// centers itself on.
type Manager struct {
	Registry *param.Registry

	FEventOffsetTable  []FEventOffsetTriple
	FEventFooterOffset uint32
	FEventFooter       []byte
	FEventChunks       [][3]Chunk

	reporter warn.Reporter

	chunkCache *archive.ChunkCache
}

// NewManager builds an empty Manager; call LoadAll (or the individual
// Load* methods) to populate it.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		Registry: param.NewRegistry(),
		reporter: warn.Discard,
	}
	if err := options.Apply(m, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// EnableChunkCache turns on the opt-in raw-chunk memoization cache. Once
// enabled, LoadFEvent additionally stashes each non-empty chunk's pristine
// pre-parse bytes in codec-compressed form, keyed by content hash, so
// RawChunkBytes can answer "what were this chunk's original bytes". Entries
// are kept until the cache is replaced; with a nil codec (NoOpCodec) they
// are uncompressed copies. It never participates in SaveFEvent's on-disk
// framing.
func (m *Manager) EnableChunkCache(codec archive.Codec) {
	m.chunkCache = archive.NewChunkCache(codec)
}

// RawChunkBytes returns the pristine bytes a chunk was parsed from, if the
// chunk cache is enabled and holds an entry for it.
func (m *Manager) RawChunkBytes(raw []byte) ([]byte, bool, error) {
	if m.chunkCache == nil {
		return nil, false, nil
	}
	compressed, ok := m.chunkCache.Get(raw)
	if !ok {
		return nil, false, nil
	}
	decompressed, err := m.chunkCache.Decompress(compressed)
	if err != nil {
		return nil, false, err
	}
	return decompressed, true, nil
}

func readU32At(f *os.File, addr int64) (uint32, error) {
	if _, err := f.Seek(addr, io.SeekStart); err != nil {
		return 0, err
	}
	var buf [4]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(buf[:]), nil
}

// LoadOverlay3 reads the FEvent offset table and footer offset from the
// overlay 3 image at path.
func (m *Manager) LoadOverlay3(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rawByteLength, err := readU32At(f, gameaddr.FEventOffsetTableLengthAddress)
	if err != nil {
		return err
	}

	wordsMinusOne := int64(rawByteLength)/4 - 1
	if wordsMinusOne%3 != 1 {
		m.reporter(warn.Warning{
			Code: warn.CodeOffsetTableLength,
			Message: fmt.Sprintf(
				"FEvent offset table length (%d) %% 3 is %d, not 1",
				wordsMinusOne, wordsMinusOne%3,
			),
		})
	}
	tripleCount := wordsMinusOne / 3

	if _, err := f.Seek(gameaddr.FEventOffsetTableAddress, io.SeekStart); err != nil {
		return err
	}

	triples := make([]FEventOffsetTriple, tripleCount)
	for i := range triples {
		var buf [12]byte
		if _, err := io.ReadFull(f, buf[:]); err != nil {
			return err
		}
		triples[i] = FEventOffsetTriple{
			byteOrder.Uint32(buf[0:4]),
			byteOrder.Uint32(buf[4:8]),
			byteOrder.Uint32(buf[8:12]),
		}
	}

	var footerOffsetBuf [4]byte
	if _, err := io.ReadFull(f, footerOffsetBuf[:]); err != nil {
		return err
	}

	m.FEventOffsetTable = triples
	m.FEventFooterOffset = byteOrder.Uint32(footerOffsetBuf[:])
	return nil
}

func loadMetadataTable(path string, addr int64, count int) (param.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(addr, io.SeekStart); err != nil {
		return nil, err
	}

	data := make([]byte, count*16)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}

	return param.TableFromBytes(data, count)
}

func saveMetadataTable(path string, addr int64, table param.Table) error {
	data, err := table.Bytes()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(addr, io.SeekStart); err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

// LoadOverlay6 reads the FEvent command-parameter-metadata table from the
// overlay 6 image at path.
func (m *Manager) LoadOverlay6(path string) error {
	table, err := loadMetadataTable(path, gameaddr.FEventCommandParameterMetadataTableAddress, gameaddr.FEventNumberOfCommands)
	if err != nil {
		return err
	}
	m.Registry.Set(param.ContextFEvent, table)
	return nil
}

// LoadOverlay12 reads the battle-script command-parameter-metadata table
// from the overlay 12 image at path.
func (m *Manager) LoadOverlay12(path string) error {
	table, err := loadMetadataTable(path, gameaddr.BattleCommandParameterMetadataTableAddress, gameaddr.BattleNumberOfCommands)
	if err != nil {
		return err
	}
	m.Registry.Set(param.ContextBattle, table)
	return nil
}

// LoadOverlay123 reads the menu-script command-parameter-metadata table
// from the overlay 123 image at path.
func (m *Manager) LoadOverlay123(path string) error {
	table, err := loadMetadataTable(path, gameaddr.MenuCommandParameterMetadataTableAddress, gameaddr.MenuNumberOfCommands)
	if err != nil {
		return err
	}
	m.Registry.Set(param.ContextMenu, table)
	return nil
}

// LoadOverlay124 reads the shop-script command-parameter-metadata table
// from the overlay 124 image at path.
func (m *Manager) LoadOverlay124(path string) error {
	table, err := loadMetadataTable(path, gameaddr.ShopCommandParameterMetadataTableAddress, gameaddr.ShopNumberOfCommands)
	if err != nil {
		return err
	}
	m.Registry.Set(param.ContextShop, table)
	return nil
}

// LoadFEvent decodes every chunk named by the offset table previously
// loaded via LoadOverlay3, using the FEvent command-parameter-metadata
// table previously loaded via LoadOverlay6.
func (m *Manager) LoadFEvent(path string) error {
	table, _ := m.Registry.Table(param.ContextFEvent)

	flat := make([]uint32, 0, len(m.FEventOffsetTable)*3)
	for _, triple := range m.FEventOffsetTable {
		flat = append(flat, triple[0], triple[1], triple[2])
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	chunks := make([][3]Chunk, len(m.FEventOffsetTable))
	index := 0
	for i, triple := range m.FEventOffsetTable {
		for slot, offset := range triple {
			var length uint32
			if index+1 < len(flat) {
				length = flat[index+1] - offset
			}

			data := make([]byte, length)
			if length > 0 {
				if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
					return err
				}
				if _, err := io.ReadFull(f, data); err != nil {
					return err
				}
			}

			chunk, err := parseChunk(data, index, table, m.reporter)
			if err != nil {
				return fmt.Errorf("fevent chunk %d: %w", index, err)
			}
			chunks[i][slot] = chunk

			if m.chunkCache != nil && length > 0 {
				if _, err := m.chunkCache.Put(data); err != nil {
					return err
				}
			}

			index++
		}
	}

	if _, err := f.Seek(int64(m.FEventFooterOffset), io.SeekStart); err != nil {
		return err
	}
	footer, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	m.FEventChunks = chunks
	m.FEventFooter = footer
	return nil
}

// LoadAll loads overlay 3, overlay 6/12/123/124, and FEvent.dat from their
// default paths (package gameaddr).
func (m *Manager) LoadAll() error {
	if err := m.LoadOverlay3(gameaddr.DefaultOverlay3Path); err != nil {
		return err
	}
	if err := m.LoadOverlay6(gameaddr.DefaultOverlay6Path); err != nil {
		return err
	}
	if err := m.LoadOverlay12(gameaddr.DefaultOverlay12Path); err != nil {
		return err
	}
	if err := m.LoadOverlay123(gameaddr.DefaultOverlay123Path); err != nil {
		return err
	}
	if err := m.LoadOverlay124(gameaddr.DefaultOverlay124Path); err != nil {
		return err
	}
	return m.LoadFEvent(gameaddr.DefaultFEventPath)
}

// SaveOverlay3 writes the current FEvent offset table and footer offset
// back into the overlay 3 image at path, replacing only that region.
func (m *Manager) SaveOverlay3(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	oldRawByteLength := byteOrder.Uint32(
		raw[gameaddr.FEventOffsetTableLengthAddress : gameaddr.FEventOffsetTableLengthAddress+4],
	)
	oldWordsMinusOne := int64(oldRawByteLength)/4 - 1
	oldRegionEnd := gameaddr.FEventOffsetTableAddress + oldWordsMinusOne*4

	var region []byte
	newRawByteLength := uint32((len(m.FEventOffsetTable)*3 + 2) * 4)
	region = appendU32(region, newRawByteLength)
	for _, triple := range m.FEventOffsetTable {
		region = appendU32(region, triple[0])
		region = appendU32(region, triple[1])
		region = appendU32(region, triple[2])
	}
	region = appendU32(region, m.FEventFooterOffset)

	rebuilt := make([]byte, 0, len(raw)-int(oldRegionEnd-gameaddr.FEventOffsetTableLengthAddress)+len(region))
	rebuilt = append(rebuilt, raw[:gameaddr.FEventOffsetTableLengthAddress]...)
	rebuilt = append(rebuilt, region...)
	rebuilt = append(rebuilt, raw[oldRegionEnd:]...)

	return os.WriteFile(path, rebuilt, 0o644)
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	byteOrder.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// SaveOverlay6 writes the FEvent command-parameter-metadata table back
// into the overlay 6 image at path.
func (m *Manager) SaveOverlay6(path string) error {
	table, _ := m.Registry.Table(param.ContextFEvent)
	return saveMetadataTable(path, gameaddr.FEventCommandParameterMetadataTableAddress, table)
}

// SaveOverlay12 writes the battle-script command-parameter-metadata table
// back into the overlay 12 image at path.
func (m *Manager) SaveOverlay12(path string) error {
	table, _ := m.Registry.Table(param.ContextBattle)
	return saveMetadataTable(path, gameaddr.BattleCommandParameterMetadataTableAddress, table)
}

// SaveOverlay123 writes the menu-script command-parameter-metadata table
// back into the overlay 123 image at path.
func (m *Manager) SaveOverlay123(path string) error {
	table, _ := m.Registry.Table(param.ContextMenu)
	return saveMetadataTable(path, gameaddr.MenuCommandParameterMetadataTableAddress, table)
}

// SaveOverlay124 writes the shop-script command-parameter-metadata table
// back into the overlay 124 image at path.
func (m *Manager) SaveOverlay124(path string) error {
	table, _ := m.Registry.Table(param.ContextShop)
	return saveMetadataTable(path, gameaddr.ShopCommandParameterMetadataTableAddress, table)
}

// SaveFEvent serializes every chunk in FEventChunks, in triple order,
// recording each chunk's starting offset into a rebuilt FEventOffsetTable
// and the footer's starting offset into FEventFooterOffset. A chunk of
// Kind ChunkEmpty contributes an offset but zero bytes.
func (m *Manager) SaveFEvent(path string) error {
	table, _ := m.Registry.Table(param.ContextFEvent)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var pos int64
	triples := make([]FEventOffsetTriple, len(m.FEventChunks))
	for i, triple := range m.FEventChunks {
		var offsets FEventOffsetTriple
		for slot, chunk := range triple {
			offsets[slot] = uint32(pos)

			encoded, err := chunk.Bytes(table)
			if err != nil {
				return fmt.Errorf("fevent chunk %d: %w", i*3+slot, err)
			}
			if len(encoded) > 0 {
				n, err := f.Write(encoded)
				if err != nil {
					return err
				}
				pos += int64(n)
			}
		}
		triples[i] = offsets
	}

	if _, err := f.Write(m.FEventFooter); err != nil {
		return err
	}

	m.FEventOffsetTable = triples
	m.FEventFooterOffset = uint32(pos)
	return nil
}

// SaveAll writes FEvent.dat, then overlay 6/12/123/124, then overlay 3, to
// their default paths — overlay 3 must be written last since it embeds the
// footer offset SaveFEvent computes.
func (m *Manager) SaveAll() error {
	if err := m.SaveFEvent(gameaddr.DefaultFEventPath); err != nil {
		return err
	}
	if err := m.SaveOverlay6(gameaddr.DefaultOverlay6Path); err != nil {
		return err
	}
	if err := m.SaveOverlay12(gameaddr.DefaultOverlay12Path); err != nil {
		return err
	}
	if err := m.SaveOverlay123(gameaddr.DefaultOverlay123Path); err != nil {
		return err
	}
	if err := m.SaveOverlay124(gameaddr.DefaultOverlay124Path); err != nil {
		return err
	}
	return m.SaveOverlay3(gameaddr.DefaultOverlay3Path)
}
