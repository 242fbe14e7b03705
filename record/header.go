package record

import (
	"github.com/greenbridge-ag/go-pcmi/hexcodec"
	"github.com/greenbridge-ag/go-pcmi/hexcursor"
	"github.com/greenbridge-ag/go-pcmi/pcmiendian"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// headerHexChars is the width, in hex-ASCII characters, of the common
// record header: record_size_words(u16) + id(u16) + record_type(u8) +
// record_format(u8) = 6 bytes = 12 hex chars.
const headerHexChars = 12

// recordFormatCharOffset is the hex-character offset of the record_format
// byte within the header, used to resolve the endian strategy before any
// endian-sensitive field (including the header's own size/id fields) is read.
const recordFormatCharOffset = 10

// Header is the common prefix every PCMI record begins with.
type Header struct {
	RecordSizeWords int
	ID              int
	RecordType      byte
	RecordFormat    byte
}

// Strategy resolves the endian strategy this header's record_format selects.
func (h Header) Strategy() pcmiendian.Strategy { return pcmiendian.Select(h.RecordFormat) }

// ParseHeader reads the common header from the front of payload and
// returns it along with a cursor positioned just after the header, already
// bound to the strategy the header's record_format selects. Field reads
// after this point flow endianness correctly regardless of what order the
// header's own multi-byte fields needed to be read in.
func ParseHeader(payload string) (Header, *hexcursor.Cursor, error) {
	if len(payload) < headerHexChars {
		return Header{}, nil, &pcmierr.ProtocolError{Reason: "payload shorter than record header"}
	}

	formatByte, err := hexcodec.DecodeByte(payload[recordFormatCharOffset], payload[recordFormatCharOffset+1])
	if err != nil {
		return Header{}, nil, &pcmierr.ProtocolError{Reason: "malformed record_format byte: " + err.Error()}
	}
	strategy := pcmiendian.Select(formatByte)
	cur := hexcursor.New(payload, strategy)

	sizeWords, err := cur.ReadUint16()
	if err != nil {
		return Header{}, nil, &pcmierr.ProtocolError{Reason: "reading record_size_words: " + err.Error()}
	}
	id, err := cur.ReadUint16()
	if err != nil {
		return Header{}, nil, &pcmierr.ProtocolError{Reason: "reading record id: " + err.Error()}
	}
	recordType, err := cur.ReadByte()
	if err != nil {
		return Header{}, nil, &pcmierr.ProtocolError{Reason: "reading record_type: " + err.Error()}
	}
	recordFormat, err := cur.ReadByte()
	if err != nil {
		return Header{}, nil, &pcmierr.ProtocolError{Reason: "reading record_format: " + err.Error()}
	}

	h := Header{
		RecordSizeWords: int(sizeWords),
		ID:              int(id),
		RecordType:      recordType,
		RecordFormat:    recordFormat,
	}
	if err := h.validateSize(payload); err != nil {
		return Header{}, nil, err
	}
	return h, cur, nil
}

// validateSize enforces the invariant record_size_words*2 equals the
// payload's byte length as conveyed by the frame.
func (h Header) validateSize(payload string) error {
	declaredBytes := h.RecordSizeWords * 2
	actualBytes := len(payload) / 2
	if declaredBytes != actualBytes {
		return &pcmierr.ProtocolError{Reason: "record_size_words*2 does not match payload byte length"}
	}
	return nil
}
