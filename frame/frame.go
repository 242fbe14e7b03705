package frame

import (
	"github.com/greenbridge-ag/go-pcmi/hexcodec"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// CR is the frame terminator.
const CR byte = 0x0d

// Outcome discriminates a classification attempt. The frame reader never
// retries; it only reports one of these to its caller (the session
// machine), which decides what to do next.
type Outcome int

const (
	// OutcomeFrame means buf held exactly one well-formed, checksum-valid frame.
	OutcomeFrame Outcome = iota
	// OutcomeNeedMore means buf is a partial frame; read more bytes and retry classification.
	OutcomeNeedMore
	// OutcomeBadChecksum means buf held a complete frame whose checksum did not verify.
	OutcomeBadChecksum
	// OutcomeMalformed means buf cannot be a valid PCMI frame regardless of more bytes.
	OutcomeMalformed
)

// Frame is a classified, payload-extracted PCMI frame. Payload is still
// hex-ASCII text; the record decoder owns turning it into field values.
type Frame struct {
	Command Command
	Payload string // hex-ASCII text, empty for bare acks
}

// Classify inspects buf (everything read from the transport up to and
// including a CR, or a single byte for a bare ack) and either returns a
// parsed Frame or an Outcome explaining why it could not.
func Classify(buf []byte) (Frame, Outcome) {
	if len(buf) == 0 {
		return Frame{}, OutcomeNeedMore
	}
	cmd := Command(buf[0])

	if IsBareAck(cmd) {
		if len(buf) != 1 {
			// A bare-ack command is only ever a single byte; anything else
			// appended to it means the buffer actually holds more than one
			// frame's worth, which the caller must have mis-split.
			return Frame{}, OutcomeMalformed
		}
		return Frame{Command: cmd}, OutcomeFrame
	}

	if isRLI, twoByte := IsRLIRecord(cmd); isRLI {
		return classifyRLIRecord(buf, cmd, twoByte)
	}

	// Everything else (including the VLI-carrying and version commands) is
	// CR-delimited: read until CR, strip the trailing checksum.
	return classifyCRDelimited(buf, cmd)
}

func classifyRLIRecord(buf []byte, cmd Command, twoByte bool) (Frame, Outcome) {
	rliWidth := 2
	if twoByte {
		rliWidth = 4
	}
	if len(buf) < 1+rliWidth {
		return Frame{}, OutcomeNeedMore
	}
	rliHex := string(buf[1 : 1+rliWidth])
	var payloadBytes int
	var err error
	if twoByte {
		payloadBytes, err = hexcodec.Decode2ByteRLI(rliHex)
	} else {
		payloadBytes, err = hexcodec.Decode1ByteRLI(rliHex)
	}
	if err != nil {
		return Frame{}, OutcomeMalformed
	}
	payloadChars := payloadBytes * 2
	// total = cmd(1) + RLI(rliWidth) + payload(payloadChars) + checksum(2) + CR(1)
	total := 1 + rliWidth + payloadChars + 2 + 1
	if len(buf) < total {
		return Frame{}, OutcomeNeedMore
	}
	if len(buf) > total {
		return Frame{}, OutcomeMalformed
	}
	if buf[total-1] != CR {
		return Frame{}, OutcomeMalformed
	}

	payload := string(buf[1+rliWidth : 1+rliWidth+payloadChars])
	checksumHex := buf[1+rliWidth+payloadChars : total-1]
	region := buf[:1+rliWidth+payloadChars]
	got, err := hexcodec.DecodeByte(checksumHex[0], checksumHex[1])
	if err != nil {
		return Frame{}, OutcomeMalformed
	}
	want := hexcodec.Checksum8(region)
	if want != got {
		return Frame{}, OutcomeBadChecksum
	}
	return Frame{Command: cmd, Payload: payload}, OutcomeFrame
}

func classifyCRDelimited(buf []byte, cmd Command) (Frame, Outcome) {
	crIdx := -1
	for i, b := range buf {
		if b == CR {
			crIdx = i
			break
		}
	}
	if crIdx < 0 {
		return Frame{}, OutcomeNeedMore
	}
	if crIdx < 1+2 {
		// must have at least cmd + 2 checksum chars before CR
		return Frame{}, OutcomeMalformed
	}
	if len(buf) > crIdx+1 {
		return Frame{}, OutcomeMalformed
	}

	region := buf[:crIdx-2]
	checksumHex := buf[crIdx-2 : crIdx]
	got, err := hexcodec.DecodeByte(checksumHex[0], checksumHex[1])
	if err != nil {
		return Frame{}, OutcomeMalformed
	}
	want := hexcodec.Checksum8(region)
	if want != got {
		return Frame{}, OutcomeBadChecksum
	}
	return Frame{Command: cmd, Payload: string(buf[1 : crIdx-2])}, OutcomeFrame
}

// Err translates a non-OutcomeFrame outcome into a pcmierr error, or nil if
// the outcome was OutcomeFrame or OutcomeNeedMore (which is not itself an
// error — it means "read more bytes").
func Err(o Outcome) error {
	switch o {
	case OutcomeFrame, OutcomeNeedMore:
		return nil
	case OutcomeBadChecksum:
		return &pcmierr.ChecksumError{}
	case OutcomeMalformed:
		return &pcmierr.ProtocolError{Reason: "malformed frame"}
	default:
		return &pcmierr.ProtocolError{Reason: "unknown classification outcome"}
	}
}
