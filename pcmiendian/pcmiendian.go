// Package pcmiendian selects between the two multi-byte field orderings a
// PCMI record may use, as signalled by the record's own record_format byte:
// "Swap" (big-endian) for record_format < 20, "NonSwap" (little-endian)
// otherwise. The strategy is resolved once per record and then threaded
// through every subsequent field read for that record.
package pcmiendian

// FormatSwapThreshold is the record_format value at and above which a
// record switches from Swap (big-endian) to NonSwap (little-endian) fields.
const FormatSwapThreshold = 20

// Strategy reads multi-byte integers out of a byte slice at a given offset.
type Strategy interface {
	Uint16(b []byte, offset int) uint16
	Int16(b []byte, offset int) int16
	Uint32(b []byte, offset int) uint32
	Int32(b []byte, offset int) int32
	Name() string
}

// Select resolves the strategy for a record given its record_format byte.
func Select(recordFormat byte) Strategy {
	if recordFormat < FormatSwapThreshold {
		return Swap{}
	}
	return NonSwap{}
}

// Swap is the big-endian strategy used by record_format < 20.
type Swap struct{}

func (Swap) Name() string { return "Swap" }

func (Swap) Uint16(b []byte, offset int) uint16 {
	return uint16(b[offset])<<8 | uint16(b[offset+1])
}

func (Swap) Int16(b []byte, offset int) int16 {
	return int16(Swap{}.Uint16(b, offset))
}

func (Swap) Uint32(b []byte, offset int) uint32 {
	return uint32(b[offset])<<24 | uint32(b[offset+1])<<16 | uint32(b[offset+2])<<8 | uint32(b[offset+3])
}

func (Swap) Int32(b []byte, offset int) int32 {
	return int32(Swap{}.Uint32(b, offset))
}

// NonSwap is the little-endian strategy used by record_format >= 20.
type NonSwap struct{}

func (NonSwap) Name() string { return "NonSwap" }

func (NonSwap) Uint16(b []byte, offset int) uint16 {
	return uint16(b[offset]) | uint16(b[offset+1])<<8
}

func (NonSwap) Int16(b []byte, offset int) int16 {
	return int16(NonSwap{}.Uint16(b, offset))
}

func (NonSwap) Uint32(b []byte, offset int) uint32 {
	return uint32(b[offset]) | uint32(b[offset+1])<<8 | uint32(b[offset+2])<<16 | uint32(b[offset+3])<<24
}

func (NonSwap) Int32(b []byte, offset int) int32 {
	return int32(NonSwap{}.Uint32(b, offset))
}
