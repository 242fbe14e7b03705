package record

import "github.com/greenbridge-ag/go-pcmi/pcmierr"

// ZoneVariables is a zone's runtime state: current measurements and the
// controller's current output levels, as opposed to ZoneParameters'
// configuration.
type ZoneVariables struct {
	Header Header

	Zone int // 1..9

	InsideTemp  Temperature
	OutsideTemp Temperature
	Humidity    byte // percent RH, 0..100

	VentLevelPct byte
	HeatOn       bool
	CoolOn       bool

	LongHeadCount    uint16
	HasLongHeadCount bool
}

// DecodeZoneVariables decodes a zone variable record (PCMI_ZONE_VAR_DATA,
// commands 0x98/0xBA).
func DecodeZoneVariables(payload string) (ZoneVariables, error) {
	h, cur, err := ParseHeader(payload)
	if err != nil {
		return ZoneVariables{}, err
	}

	zone := h.ID
	if zone < 1 || zone > 9 {
		return ZoneVariables{}, &pcmierr.ParseError{Reason: "zone number out of range 1..9"}
	}

	insideRaw, err := cur.ReadInt16()
	if err != nil {
		return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading inside temp: " + err.Error()}
	}
	outsideRaw, err := cur.ReadInt16()
	if err != nil {
		return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading outside temp: " + err.Error()}
	}
	humidity, err := cur.ReadByte()
	if err != nil {
		return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading humidity: " + err.Error()}
	}
	ventLevel, err := cur.ReadByte()
	if err != nil {
		return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading vent level: " + err.Error()}
	}
	flags, err := cur.ReadByte()
	if err != nil {
		return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading output flags: " + err.Error()}
	}
	// pad byte: the body must land on a word boundary like every other
	// record (record_size_words*2 must equal the payload's byte length).
	if _, err := cur.ReadByte(); err != nil {
		return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading reserved byte: " + err.Error()}
	}

	zv := ZoneVariables{
		Header:       h,
		Zone:         zone,
		InsideTemp:   NewTemperature(insideRaw),
		OutsideTemp:  NewTemperature(outsideRaw),
		Humidity:     humidity,
		VentLevelPct: ventLevel,
		HeatOn:       flags&0x01 != 0,
		CoolOn:       flags&0x02 != 0,
	}

	if h.RecordFormat >= longHeadCountFormat && cur.Remaining() >= 4 {
		longCount, err := cur.ReadUint16()
		if err != nil {
			return ZoneVariables{}, &pcmierr.ProtocolError{Reason: "reading long head count: " + err.Error()}
		}
		zv.LongHeadCount = longCount
		zv.HasLongHeadCount = true
	}

	return zv, nil
}
