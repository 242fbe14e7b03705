// Package pcmierr defines the PCMI client error taxonomy: distinct, typed
// errors rather than ad hoc fmt.Errorf strings, so callers can distinguish
// retryable conditions from fatal ones with errors.As.
package pcmierr

import "fmt"

// TransportError wraps a failure from the transport boundary itself
// (open/close/read/write at the OS level). Fatal to the current session.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("pcmi: transport %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError reports a read that exceeded its bound. Retryable.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("pcmi: timeout during %s", e.Op) }

// ChecksumError reports a frame that arrived with a checksum mismatch.
// Retryable: the session either asks the controller to resend or
// retransmits its own last frame.
type ChecksumError struct {
	Want, Got byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("pcmi: checksum mismatch: want 0x%02X got 0x%02X", e.Want, e.Got)
}

// ProtocolError reports an invalid frame structure: unknown command, an RLI
// that overruns the buffer, malformed hex-ASCII, or a header/frame length
// mismatch. Fatal to the current download; the session may continue.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string { return "pcmi: protocol error: " + e.Reason }

// ParseError reports a record-level invariant violation (zone number out of
// range, a cross-field mismatch). Fatal to the current record only; the
// session continues and the next record is still requested, unless the
// caller aborts.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "pcmi: parse error: " + e.Reason }

// ControllerError wraps a 0xC0..0xDB frame: the controller's own error
// byte, plus a human-readable message from the fixed table in
// ControllerErrorMessage.
type ControllerError struct {
	Code byte
}

func (e *ControllerError) Error() string {
	return fmt.Sprintf("pcmi: controller error 0x%02X: %s", e.Code, ControllerErrorMessage(e.Code))
}

// ConnectionError reports that connect() did not receive SN_ACK. Fatal.
type ConnectionError struct {
	Reason string
}

func (e *ConnectionError) Error() string { return "pcmi: connection failed: " + e.Reason }

// controllerErrorMessages is the fixed code -> message table for the
// controller error range (0xC1..0xDB).
var controllerErrorMessages = map[byte]string{
	0xc1: "generic controller error",
	0xc2: "password required or rejected",
	0xc3: "invalid serial number",
	0xc4: "invalid data in request",
	0xc5: "no such zone",
	0xca: "try again",
	0xcb: "controller has hands-off flag set",
	0xcc: "resend last frame",
	0xcd: "no such device",
	0xce: "zone has no upload available",
	0xd9: "checksum error reported by controller",
	0xda: "controller is starting up",
	0xdb: "invalid length indicator",
}

// ControllerErrorMessage looks up the fixed human-readable message for a
// controller error byte, falling back to a generic description for any
// code in range that the table doesn't name individually.
func ControllerErrorMessage(code byte) string {
	if msg, ok := controllerErrorMessages[code]; ok {
		return msg
	}
	if code >= 0xc0 && code <= 0xdb {
		return "unspecified controller error"
	}
	return "not a controller error code"
}
