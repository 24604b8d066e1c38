package param

import "github.com/mnl-modding/mnllib-go/mnlerr"

// Table is a command-ID-indexed metadata table for one script context
// (FEvent, battle, menu, or shop). It is what container.Manager loads from
// a fixed overlay address before any script in that context can be parsed.
type Table []Metadata

// TableFromBytes decodes count consecutive 16-byte metadata records from
// data.
func TableFromBytes(data []byte, count int) (Table, error) {
	table := make(Table, count)
	for i := 0; i < count; i++ {
		start := i * metadataRecordSize
		end := start + metadataRecordSize
		if end > len(data) {
			return nil, mnlerr.ErrTruncated
		}

		metadata, err := FromBytes(data[start:end])
		if err != nil {
			return nil, err
		}
		table[i] = metadata
	}

	return table, nil
}

// Bytes re-encodes the whole table, in command-ID order.
func (t Table) Bytes() ([]byte, error) {
	out := make([]byte, 0, len(t)*metadataRecordSize)
	for _, metadata := range t {
		record, err := metadata.Bytes()
		if err != nil {
			return nil, err
		}
		out = append(out, record...)
	}

	return out, nil
}

// Lookup returns the metadata for commandID, or ErrInvalidCommandID if it's
// out of range.
func (t Table) Lookup(commandID uint16) (Metadata, error) {
	if int(commandID) >= len(t) {
		return Metadata{}, mnlerr.ErrInvalidCommandID
	}

	return t[commandID], nil
}

// Context identifies which of the four command-parameter-metadata tables a
// script belongs to; each context has its own command ID space.
type Context int

const (
	ContextFEvent Context = iota
	ContextBattle
	ContextMenu
	ContextShop
)

func (c Context) String() string {
	switch c {
	case ContextFEvent:
		return "fevent"
	case ContextBattle:
		return "battle"
	case ContextMenu:
		return "menu"
	case ContextShop:
		return "shop"
	default:
		return "unknown"
	}
}

// Registry holds one Table per script context, letting a manager swap in
// the tables it loaded from the overlays without every call site needing to
// know which context it's in.
type Registry struct {
	tables map[Context]Table
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[Context]Table)}
}

// Set installs or replaces the table for ctx.
func (r *Registry) Set(ctx Context, table Table) {
	r.tables[ctx] = table
}

// Table returns the table for ctx, or nil if none has been set.
func (r *Registry) Table(ctx Context) (Table, bool) {
	table, ok := r.tables[ctx]
	return table, ok
}
