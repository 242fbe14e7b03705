package record

import "github.com/greenbridge-ag/go-pcmi/pcmierr"

// longHeadCountFormat is the record_format threshold at and above which a
// zone parameter/variable record carries 16-bit "long" head counts in
// addition to (superseding) the 8-bit head counts every format carries.
const longHeadCountFormat = 3

// ZoneParameters is a zone's configuration: setpoints, staging, and the
// head counts used to scale per-head ventilation/heating calculations.
type ZoneParameters struct {
	Header Header

	Zone int // 1..9

	HeatSetpoint Temperature
	CoolSetpoint Temperature
	StaticSetpointTenthsInWC int16 // static pressure setpoint, tenths of inches W.C.

	VentStages  byte
	MinVentPct  byte
	MaxVentPct  byte

	HeadCount     byte   // always present
	LongHeadCount uint16 // present only when RecordFormat >= 3; 0 otherwise
	HasLongHeadCount bool
}

// DecodeZoneParameters decodes a zone parameter record (PCMI_ZONE_PARM_DATA,
// commands 0x96/0xB8).
func DecodeZoneParameters(payload string) (ZoneParameters, error) {
	h, cur, err := ParseHeader(payload)
	if err != nil {
		return ZoneParameters{}, err
	}

	zone := h.ID
	if zone < 1 || zone > 9 {
		return ZoneParameters{}, &pcmierr.ParseError{Reason: "zone number out of range 1..9"}
	}

	heatRaw, err := cur.ReadInt16()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading heat setpoint: " + err.Error()}
	}
	coolRaw, err := cur.ReadInt16()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading cool setpoint: " + err.Error()}
	}
	staticRaw, err := cur.ReadInt16()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading static setpoint: " + err.Error()}
	}
	ventStages, err := cur.ReadByte()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading vent stages: " + err.Error()}
	}
	minVent, err := cur.ReadByte()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading min vent: " + err.Error()}
	}
	maxVent, err := cur.ReadByte()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading max vent: " + err.Error()}
	}
	headCount, err := cur.ReadByte()
	if err != nil {
		return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading head count: " + err.Error()}
	}

	zp := ZoneParameters{
		Header:                   h,
		Zone:                     zone,
		HeatSetpoint:             NewTemperature(heatRaw),
		CoolSetpoint:             NewTemperature(coolRaw),
		StaticSetpointTenthsInWC: staticRaw,
		VentStages:               ventStages,
		MinVentPct:               minVent,
		MaxVentPct:               maxVent,
		HeadCount:                headCount,
	}

	if h.RecordFormat >= longHeadCountFormat && cur.Remaining() >= 4 {
		longCount, err := cur.ReadUint16()
		if err != nil {
			return ZoneParameters{}, &pcmierr.ProtocolError{Reason: "reading long head count: " + err.Error()}
		}
		zp.LongHeadCount = longCount
		zp.HasLongHeadCount = true
	}

	return zp, nil
}
