// Package hexcursor implements the position-tracked reader record decoders
// use to walk an ASCII-hex payload. It is the sole way a record decoder
// touches payload bytes, which forces every endian-sensitive read through
// the cursor's bound pcmiendian.Strategy.
package hexcursor

import (
	"fmt"

	"github.com/greenbridge-ag/go-pcmi/hexcodec"
	"github.com/greenbridge-ag/go-pcmi/pcmiendian"
)

// Cursor reads an ASCII-hex payload two characters (one logical byte) at a time.
type Cursor struct {
	payload  string
	pos      int // character offset, not byte offset
	strategy pcmiendian.Strategy
}

// New creates a cursor over payload bound to strategy.
func New(payload string, strategy pcmiendian.Strategy) *Cursor {
	return &Cursor{payload: payload, strategy: strategy}
}

// Pos returns the current position in characters.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread characters.
func (c *Cursor) Remaining() int { return len(c.payload) - c.pos }

// Strategy returns the cursor's bound endian strategy.
func (c *Cursor) Strategy() pcmiendian.Strategy { return c.strategy }

// SetStrategy rebinds the cursor's endian strategy. Used when a nested
// sub-record carries its own record_format distinct from its parent's.
func (c *Cursor) SetStrategy(s pcmiendian.Strategy) { c.strategy = s }

func (c *Cursor) require(chars int) error {
	if chars < 0 || c.pos+chars > len(c.payload) {
		return fmt.Errorf("hexcursor: bounded-read error: need %d chars at pos %d, only %d remain", chars, c.pos, c.Remaining())
	}
	return nil
}

// Skip advances the cursor by n characters without reading them.
func (c *Cursor) Skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Seek moves the cursor to an absolute character offset.
func (c *Cursor) Seek(n int) error {
	if n < 0 || n > len(c.payload) {
		return fmt.Errorf("hexcursor: seek %d out of bounds [0,%d]", n, len(c.payload))
	}
	c.pos = n
	return nil
}

// bytesAt decodes n hex-ASCII bytes starting at the given character offset,
// without touching the cursor's position.
func (c *Cursor) bytesAt(offset, n int) ([]byte, error) {
	chars := n * 2
	if offset < 0 || offset+chars > len(c.payload) {
		return nil, fmt.Errorf("hexcursor: bounded-read error: need %d chars at pos %d, only %d available", chars, offset, len(c.payload)-offset)
	}
	return hexcodec.Decode(c.payload[offset : offset+chars])
}

// ReadByte reads one hex-ASCII byte (2 chars) and advances.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.bytesAt(c.pos, 1)
	if err != nil {
		return 0, err
	}
	c.pos += 2
	return b[0], nil
}

// ReadSignedByte reads one hex-ASCII byte as a signed int8 and advances.
func (c *Cursor) ReadSignedByte() (int8, error) {
	b, err := c.ReadByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// ReadUint16 reads a 16-bit unsigned field (4 hex chars) using the bound
// strategy's byte order, and advances.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.bytesAt(c.pos, 2)
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return c.strategy.Uint16(b, 0), nil
}

// ReadInt16 reads a 16-bit signed field (4 hex chars) and advances.
func (c *Cursor) ReadInt16() (int16, error) {
	b, err := c.bytesAt(c.pos, 2)
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return c.strategy.Int16(b, 0), nil
}

// ReadUint32 reads a 32-bit unsigned field (8 hex chars) and advances.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.bytesAt(c.pos, 4)
	if err != nil {
		return 0, err
	}
	c.pos += 8
	return c.strategy.Uint32(b, 0), nil
}

// ReadInt32 reads a 32-bit signed field (8 hex chars) and advances.
func (c *Cursor) ReadInt32() (int32, error) {
	b, err := c.bytesAt(c.pos, 4)
	if err != nil {
		return 0, err
	}
	c.pos += 8
	return c.strategy.Int32(b, 0), nil
}

// PeekByte reads one hex-ASCII byte at an absolute character offset without
// advancing the cursor.
func (c *Cursor) PeekByte(offset int) (byte, error) {
	b, err := c.bytesAt(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// PeekUint16 reads a 16-bit field at an absolute character offset, using the
// bound strategy's byte order, without advancing the cursor.
func (c *Cursor) PeekUint16(offset int) (uint16, error) {
	b, err := c.bytesAt(offset, 2)
	if err != nil {
		return 0, err
	}
	return c.strategy.Uint16(b, 0), nil
}

// ReadBytes reads n raw bytes (2n hex chars) and advances.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.bytesAt(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n * 2
	return b, nil
}

// ReadRemainingHex returns the undecoded hex-ASCII tail of the payload,
// without advancing the cursor. Used by record decoders to parse an inner
// VLI at the current position.
func (c *Cursor) ReadRemainingHex() string {
	return c.payload[c.pos:]
}
