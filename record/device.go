package record

import (
	"github.com/greenbridge-ag/go-pcmi/hexcodec"
	"github.com/greenbridge-ag/go-pcmi/hexcursor"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// DeviceRecord is a per-device configuration or runtime state record. The
// device-type-specific tail is either a known, strongly-typed value, or an
// UnknownDevice carrying the raw sub-payload when no strategy is registered
// for the type — the whole record is still delivered; only its tail is
// opaque.
type DeviceRecord struct {
	Header     Header
	DeviceType DeviceType
	Index      int // header.ID: the device's index within its zone
	Tail       any
}

// UnknownDevice preserves an unrecognized device type's raw sub-payload
// rather than dropping it, so callers can handle future device types
// without a client upgrade.
type UnknownDevice struct {
	Raw string // hex-ASCII text of the sub-record payload
}

// DecodeDeviceParameters decodes a device configuration record
// (PCMI_PARM_DATA, commands 0x90/0xB7), dispatching the device-specific
// tail through the device strategy registry.
func DecodeDeviceParameters(payload string, cmd byte) (DeviceRecord, error) {
	return decodeDevice(payload, cmd, func(s deviceStrategy, cur *hexcursor.Cursor, n int) (any, error) {
		return s.parseParameters(cur, n)
	})
}

// DecodeDeviceVariables decodes a device runtime-state record
// (PCMI_VAR_DATA, commands 0x92/0xB9), dispatching the device-specific
// tail through the device strategy registry.
func DecodeDeviceVariables(payload string, cmd byte) (DeviceRecord, error) {
	return decodeDevice(payload, cmd, func(s deviceStrategy, cur *hexcursor.Cursor, n int) (any, error) {
		return s.parseVariables(cur, n)
	})
}

func decodeDevice(payload string, cmd byte, dispatch func(deviceStrategy, *hexcursor.Cursor, int) (any, error)) (DeviceRecord, error) {
	h, cur, err := ParseHeader(payload)
	if err != nil {
		return DeviceRecord{}, err
	}

	deviceTypeByte, err := cur.ReadByte()
	if err != nil {
		return DeviceRecord{}, &pcmierr.ProtocolError{Reason: "reading device-type byte: " + err.Error()}
	}
	deviceType := DeviceType(deviceTypeByte)

	subLenBytes, consumed, err := hexcodec.DecodeVLI(cur.ReadRemainingHex(), cmd)
	if err != nil {
		return DeviceRecord{}, &pcmierr.ProtocolError{Reason: "reading device sub-record length: " + err.Error()}
	}
	if err := cur.Skip(consumed); err != nil {
		return DeviceRecord{}, &pcmierr.ProtocolError{Reason: "advancing past device VLI: " + err.Error()}
	}
	if cur.Remaining() < subLenBytes*2 {
		return DeviceRecord{}, &pcmierr.ProtocolError{Reason: "device sub-record length overruns payload"}
	}

	dr := DeviceRecord{Header: h, DeviceType: deviceType, Index: h.ID}

	strategy, ok := lookupDevice(deviceType)
	if !ok {
		raw, err := cur.ReadBytes(subLenBytes)
		if err != nil {
			return DeviceRecord{}, &pcmierr.ProtocolError{Reason: "reading unknown device payload: " + err.Error()}
		}
		dr.Tail = UnknownDevice{Raw: hexcodec.Encode(raw)}
		return dr, nil
	}

	tail, err := dispatch(strategy, cur, subLenBytes)
	if err != nil {
		return DeviceRecord{}, err
	}
	dr.Tail = tail
	return dr, nil
}
