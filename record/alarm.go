package record

import (
	"fmt"
	"time"

	"github.com/greenbridge-ag/go-pcmi/hexcodec"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// AlarmEntry is one entry from the controller's active/historical alarm log
// (PCMI_SEND_ALARM / 0xA5 / 0xB3), VLI-delimited like HistoryEntry.
type AlarmEntry struct {
	Header Header

	Timestamp time.Time
	AlarmCode byte
	Zone      int
	Active    bool
}

func (a AlarmEntry) String() string {
	state := "cleared"
	if a.Active {
		state = "active"
	}
	return fmt.Sprintf("%s alarm=%d zone=%d %s", formatTimestamp(a.Timestamp), a.AlarmCode, a.Zone, state)
}

// DecodeAlarmEntry decodes an alarm record. cmd selects the VLI width, as
// with DecodeHistoryEntry.
func DecodeAlarmEntry(payload string, cmd byte) (AlarmEntry, error) {
	h, cur, err := ParseHeader(payload)
	if err != nil {
		return AlarmEntry{}, err
	}

	innerLen, consumed, err := hexcodec.DecodeVLI(cur.ReadRemainingHex(), cmd)
	if err != nil {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "reading alarm VLI: " + err.Error()}
	}
	if err := cur.Skip(consumed); err != nil {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "advancing past alarm VLI: " + err.Error()}
	}
	if cur.Remaining() < innerLen*2 {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "alarm record length overruns payload"}
	}

	rawTime, err := cur.ReadUint32()
	if err != nil {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "reading alarm timestamp: " + err.Error()}
	}
	alarmCode, err := cur.ReadByte()
	if err != nil {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "reading alarm code: " + err.Error()}
	}
	zone, err := cur.ReadByte()
	if err != nil {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "reading alarm zone: " + err.Error()}
	}
	flags, err := cur.ReadByte()
	if err != nil {
		return AlarmEntry{}, &pcmierr.ProtocolError{Reason: "reading alarm flags: " + err.Error()}
	}

	return AlarmEntry{
		Header:    h,
		Timestamp: decodeTimestamp(rawTime),
		AlarmCode: alarmCode,
		Zone:      int(zone),
		Active:    flags&0x01 != 0,
	}, nil
}
