// Package frame classifies and builds PCMI wire frames: bare acks,
// length-prefixed records (1-byte or 2-byte RLI), and CR-delimited records
// (including the VLI-carrying history/alarm frames and the version frame).
package frame

// Command is an 8-bit PCMI command/tag byte.
type Command byte

// Session commands.
const (
	CmdAttn   Command = 0x81 // PCMI_ATTN
	CmdAtAck  Command = 0x82 // PCMI_AT_ACK
	CmdSerial Command = 0x85 // PCMI_SERIAL_NUMBER
	CmdSnAck  Command = 0x86 // PCMI_SN_ACK
	CmdBreak  Command = 0x87 // PCMI_BREAK
	CmdBrAck  Command = 0x88 // PCMI_BR_ACK
)

// Data request commands (client -> controller).
const (
	CmdSendParm      Command = 0x8f // PCMI_SEND_PARM (device config)
	CmdSendVar       Command = 0x91 // PCMI_SEND_VAR (device runtime state)
	CmdSendHistory   Command = 0x93 // PCMI_SEND_HISTORY
	CmdSendZoneParm  Command = 0x95 // PCMI_SEND_ZONE_PARM
	CmdSendZoneVar   Command = 0x97 // PCMI_SEND_ZONE_VAR
	CmdSendVersion   Command = 0x9f // PCMI_SEND_VERSION
	CmdSendAlarm     Command = 0xa4 // PCMI_SEND_ALARM
	CmdSendInfo      Command = 0xac // PCMI_SEND_INFO
)

// Data string commands (controller -> client), 1-byte-RLI variant and its
// 2-byte-RLI "extended" twin. The pairs differ only in RLI width; model as
// one logical record kind parameterized by the RLI width used.
const (
	CmdParmData     Command = 0x90 // device config data, 1-byte RLI
	CmdParmDataExt  Command = 0xb7 // device config data, 2-byte RLI
	CmdVarData      Command = 0x92 // device runtime data, 1-byte RLI
	CmdVarDataExt   Command = 0xb9 // device runtime data, 2-byte RLI
	CmdZoneParmData Command = 0x96 // zone parameter data, 1-byte RLI
	CmdZoneParmExt  Command = 0xb8 // zone parameter data, 2-byte RLI
	CmdZoneVarData  Command = 0x98 // zone variable data, 1-byte RLI
	CmdZoneVarExt   Command = 0xba // zone variable data, 2-byte RLI

	CmdVersionData Command = 0xa0 // firmware version data, CR-delimited (no RLI)

	CmdHistoryData    Command = 0x94 // history data, VLI-carrying, 1-byte VLI
	CmdHistoryDataExt Command = 0xb5 // history data, VLI-carrying, 2-byte VLI
	CmdAlarmData      Command = 0xa5 // alarm data, VLI-carrying, 1-byte VLI
	CmdAlarmDataExt   Command = 0xb3 // alarm data, VLI-carrying, 2-byte VLI
)

// Flow control commands.
const (
	CmdOkSendNext Command = 0x99 // PCMI_OK_SEND_NEXT
	CmdEndOfRecord Command = 0x9b // PCMI_END_OF_RECORD
	CmdOkCcNext   Command = 0xa3 // PCMI_OK_CC_NEXT
	CmdOkAlt      Command = 0xa9 // alternate bare-ack flow control code
	CmdNoError    Command = 0xc0 // bare-ack "no error" placeholder, outside 0xC1..0xDB proper
)

// Controller error commands, 0xC1..0xDB.
const (
	CmdErrGeneric       Command = 0xc1 // PCMI_ER_GENERIC
	CmdErrPassword      Command = 0xc2 // PCMI_ER_PASSWORD
	CmdErrSerial        Command = 0xc3 // PCMI_ER_SERIAL
	CmdErrData          Command = 0xc4 // PCMI_ER_DATA
	CmdErrNoZone        Command = 0xc5 // PCMI_ER_NO_ZONE
	CmdErrTryAgain      Command = 0xca // PCMI_ER_TRY_AGAIN
	CmdErrHandsOff      Command = 0xcb // PCMI_ER_HANDS_OFF
	CmdErrResend        Command = 0xcc // PCMI_ER_RESEND
	CmdErrNoDevice      Command = 0xcd // PCMI_ER_NO_DEVICE
	CmdErrNoZoneUpload  Command = 0xce // PCMI_ER_NO_ZONE_UPLOAD
	CmdErrChecksum      Command = 0xd9 // PCMI_ER_CHECKSUM
	CmdErrStartUp       Command = 0xda // PCMI_ER_START_UP
	CmdErrLength        Command = 0xdb // PCMI_ER_LENGTH
)

// extendedThreshold is the command-byte boundary : codes at or above it
// are "extended" data-string variants carrying a 2-byte length indicator,
// and codes at or above errorThreshold are controller-reported errors.
const (
	extendedThreshold = 0xb0
	errorThreshold    = 0xc0
)

// IsExtended reports whether cmd is an extended (2-byte-RLI/VLI) variant.
func IsExtended(cmd Command) bool { return cmd >= extendedThreshold }

// IsControllerError reports whether cmd is in the controller error range.
func IsControllerError(cmd Command) bool { return cmd >= errorThreshold }

// bareAckSet is the set of commands carried with no payload, no checksum,
// and no CR terminator: a single command byte is the whole frame.
var bareAckSet = map[Command]bool{
	CmdAtAck:      true,
	CmdSnAck:      true,
	CmdBrAck:      true,
	CmdEndOfRecord: true,
	CmdOkCcNext:   true,
	CmdOkAlt:      true,
	CmdNoError:    true,
}

// IsBareAck reports whether cmd is exchanged as a single command byte with
// no length indicator, payload, checksum, or CR — including every
// controller error code, which is also a bare single-byte frame.
func IsBareAck(cmd Command) bool {
	if IsControllerError(cmd) {
		return true
	}
	return bareAckSet[cmd]
}

// oneByteRLISet is the set of data-string commands carrying a 1-byte RLI.
var oneByteRLISet = map[Command]bool{
	CmdParmData:     true,
	CmdVarData:      true,
	CmdZoneParmData: true,
	CmdZoneVarData:  true,
}

// twoByteRLISet is the set of extended data-string commands carrying a
// 2-byte RLI.
var twoByteRLISet = map[Command]bool{
	CmdParmDataExt:  true,
	CmdVarDataExt:   true,
	CmdZoneParmExt:  true,
	CmdZoneVarExt:   true,
}

// IsRLIRecord reports whether cmd is a length-prefixed record frame, and
// if so whether its RLI is 2 bytes wide.
func IsRLIRecord(cmd Command) (isRLI bool, twoByte bool) {
	if oneByteRLISet[cmd] {
		return true, false
	}
	if twoByteRLISet[cmd] {
		return true, true
	}
	return false, false
}

// vliCarryingSet is the set of commands whose payload opens with an inner
// VLI delimiting the record (history, alarm); the outer frame is still
// CR-delimited with a trailing checksum.
var vliCarryingSet = map[Command]bool{
	CmdHistoryData:    true,
	CmdHistoryDataExt: true,
	CmdAlarmData:      true,
	CmdAlarmDataExt:   true,
}

// IsVLICarrying reports whether cmd's payload is VLI-delimited.
func IsVLICarrying(cmd Command) bool { return vliCarryingSet[cmd] }

// ZoneParmVariants, ZoneVarVariants, etc. pair the 1-byte and 2-byte-RLI
// twins of each data-string command, modeling them as one
// logical record kind parameterized by RLI width, not two separate kinds.
func ZoneParmVariants() (Command, Command) { return CmdZoneParmData, CmdZoneParmExt }
func ZoneVarVariants() (Command, Command)  { return CmdZoneVarData, CmdZoneVarExt }
func ParmVariants() (Command, Command)     { return CmdParmData, CmdParmDataExt }
func VarVariants() (Command, Command)      { return CmdVarData, CmdVarDataExt }
func HistoryVariants() (Command, Command)  { return CmdHistoryData, CmdHistoryDataExt }
func AlarmVariants() (Command, Command)    { return CmdAlarmData, CmdAlarmDataExt }

// IsOneOf reports whether cmd equals any of the given variants — the usual
// way a session dialogue step checks "is this frame for my download".
func IsOneOf(cmd Command, variants ...Command) bool {
	for _, v := range variants {
		if cmd == v {
			return true
		}
	}
	return false
}
