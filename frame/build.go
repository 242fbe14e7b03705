package frame

import (
	"errors"

	"github.com/greenbridge-ag/go-pcmi/hexcodec"
)

var errSerialLength = errors.New("frame: serial number must be exactly 8 digits")

// STX and ETX are the sentinel bytes framing an outgoing request frame.
// They are never part of the checksummed region.
const (
	STX byte = 0x20
	ETX byte = CR
)

// BuildBareAck returns the single-byte wire form of a bare ack/flow/error command.
func BuildBareAck(cmd Command) []byte {
	return []byte{byte(cmd)}
}

// BuildLengthPrefixed builds an outgoing length-prefixed record frame:
// STX, command, RLI, hex-ASCII payload, checksum, CR. twoByteRLI selects the
// 2-byte (low-byte-first) RLI form used by extended commands.
func BuildLengthPrefixed(cmd Command, payload []byte, twoByteRLI bool) ([]byte, error) {
	var rliHex string
	var err error
	if twoByteRLI {
		rliHex, err = hexcodec.Encode2ByteRLI(len(payload))
	} else {
		rliHex, err = hexcodec.Encode1ByteRLI(len(payload))
	}
	if err != nil {
		return nil, err
	}
	payloadHex := hexcodec.Encode(payload)

	region := []byte{byte(cmd)}
	region = append(region, []byte(rliHex)...)
	region = append(region, []byte(payloadHex)...)
	checksum := hexcodec.Checksum8(region)

	out := make([]byte, 0, 1+len(region)+2+1)
	out = append(out, STX)
	out = append(out, region...)
	out = append(out, []byte(hexcodec.EncodeByte(checksum))...)
	out = append(out, ETX)
	return out, nil
}

// BuildCRDelimited builds an outgoing CR-delimited frame: STX, command,
// hex-ASCII payload, checksum, CR.
func BuildCRDelimited(cmd Command, payload []byte) []byte {
	payloadHex := hexcodec.Encode(payload)
	region := append([]byte{byte(cmd)}, []byte(payloadHex)...)
	checksum := hexcodec.Checksum8(region)

	out := make([]byte, 0, 1+len(region)+2+1)
	out = append(out, STX)
	out = append(out, region...)
	out = append(out, []byte(hexcodec.EncodeByte(checksum))...)
	out = append(out, ETX)
	return out
}

// BuildSerialNumber builds the PCMI_SERIAL_NUMBER connect frame carrying an
// 8-digit ASCII serial number. Unlike a data-string record's RLI (a 16-bit
// word count), the connect frame's length field is a plain hex-ASCII byte
// count, and the serial digits travel as literal ASCII text rather than a
// hex-encoded binary payload.
func BuildSerialNumber(serial string) ([]byte, error) {
	if len(serial) != 8 {
		return nil, errSerialLength
	}
	lengthHex := hexcodec.EncodeByte(byte(len(serial)))

	region := []byte{byte(CmdSerial)}
	region = append(region, []byte(lengthHex)...)
	region = append(region, []byte(serial)...)
	checksum := hexcodec.Checksum8(region)

	out := make([]byte, 0, 1+len(region)+2+1)
	out = append(out, STX)
	out = append(out, region...)
	out = append(out, []byte(hexcodec.EncodeByte(checksum))...)
	out = append(out, ETX)
	return out, nil
}
