package record

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/greenbridge-ag/go-pcmi/hexcodec"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// historyEpoch is the base instant a history/alarm record's packed
// timestamp counts seconds from.
var historyEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// timestampFormat is the strftime pattern every timestamped record renders
// with, matching doismellburning-samoyed's house style for formatted times.
const timestampFormat = "%Y-%m-%d %H:%M:%S"

func decodeTimestamp(raw uint32) time.Time {
	return historyEpoch.Add(time.Duration(raw) * time.Second)
}

func formatTimestamp(t time.Time) string {
	s, err := strftime.Format(timestampFormat, t.UTC())
	if err != nil {
		return t.UTC().Format(time.RFC3339)
	}
	return s
}

// HistoryEntry is one event from the controller's history log
// (PCMI_SEND_HISTORY / 0x94 / 0xB5), VLI-delimited inside a CR-delimited
// outer frame.
type HistoryEntry struct {
	Header Header

	Timestamp time.Time
	EventCode byte
	Zone      int
	Value     Temperature
}

// String renders the entry for logging, timestamped via strftime in the
// teacher pack's house style (doismellburning-samoyed is the pack's only
// strftime consumer; this mirrors its %Y-%m-%d %H:%M:%S pattern).
func (h HistoryEntry) String() string {
	return fmt.Sprintf("%s event=%d zone=%d", formatTimestamp(h.Timestamp), h.EventCode, h.Zone)
}

// DecodeHistoryEntry decodes a history record: the 1-byte-VLI/2-byte-VLI
// command pair (0x94/0xB5) determines whether the inner VLI is 1 or 2
// bytes wide, which cmd selects.
func DecodeHistoryEntry(payload string, cmd byte) (HistoryEntry, error) {
	h, cur, err := ParseHeader(payload)
	if err != nil {
		return HistoryEntry{}, err
	}

	innerLen, consumed, err := hexcodec.DecodeVLI(cur.ReadRemainingHex(), cmd)
	if err != nil {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "reading history VLI: " + err.Error()}
	}
	if err := cur.Skip(consumed); err != nil {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "advancing past history VLI: " + err.Error()}
	}
	if cur.Remaining() < innerLen*2 {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "history record length overruns payload"}
	}

	rawTime, err := cur.ReadUint32()
	if err != nil {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "reading history timestamp: " + err.Error()}
	}
	eventCode, err := cur.ReadByte()
	if err != nil {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "reading history event code: " + err.Error()}
	}
	zone, err := cur.ReadByte()
	if err != nil {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "reading history zone: " + err.Error()}
	}
	valueRaw, err := cur.ReadInt16()
	if err != nil {
		return HistoryEntry{}, &pcmierr.ProtocolError{Reason: "reading history value: " + err.Error()}
	}

	return HistoryEntry{
		Header:    h,
		Timestamp: decodeTimestamp(rawTime),
		EventCode: eventCode,
		Zone:      int(zone),
		Value:     NewTemperature(valueRaw),
	}, nil
}
