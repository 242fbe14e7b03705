// Package session drives the PCMI connect/download/disconnect dialogue
// a single-threaded pull-pattern state machine layered on
// top of package frame and package record.
package session

import (
	"errors"
	"fmt"

	"github.com/greenbridge-ag/go-pcmi/frame"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
	"github.com/greenbridge-ag/go-pcmi/pcmilog"
	"github.com/greenbridge-ag/go-pcmi/transport"
)

// State is one of the five session states.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Downloading
	Error
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	case Downloading:
		return "Downloading"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Client drives one PCMI session over one transport. Not safe for
// concurrent use: the session is modeled as single-threaded
// cooperative, with all state touched only by the task that owns it.
type Client struct {
	cfg       Config
	transport transport.Transport
	log       pcmilog.Log

	state State
}

// New creates a Client bound to t, initially Disconnected. Construction
// does not open the transport; Connect does.
func New(cfg Config, t transport.Transport, log pcmilog.Log) *Client {
	return &Client{cfg: cfg, transport: t, log: log, state: Disconnected}
}

// State reports the client's current state.
func (c *Client) State() State { return c.state }

// Connect opens the transport and performs the serial-number handshake.
func (c *Client) Connect(serial string) error {
	if c.state != Disconnected {
		return &pcmierr.ConnectionError{Reason: "connect called outside Disconnected state"}
	}

	if err := c.transport.Open(); err != nil {
		return err
	}
	c.state = Connecting

	send, err := frame.BuildSerialNumber(serial)
	if err != nil {
		c.transport.Close()
		c.state = Disconnected
		return &pcmierr.ConnectionError{Reason: err.Error()}
	}

	f, err := c.exchange(send)
	if err != nil {
		c.transport.Close()
		c.state = Disconnected
		return &pcmierr.ConnectionError{Reason: err.Error()}
	}
	if f.Command != frame.CmdSnAck {
		c.transport.Close()
		c.state = Disconnected
		return &pcmierr.ConnectionError{Reason: fmt.Sprintf("unexpected response 0x%02X to serial number", byte(f.Command))}
	}

	c.state = Connected
	c.log.Debug("pcmi: connected, serial=%s", serial)
	return nil
}

// Disconnect sends PCMI_BREAK, waits for PCMI_BR_ACK, and closes the
// transport. Idempotent: calling it while already Disconnected is a no-op,
// so the abandonment path below can call it unconditionally.
func (c *Client) Disconnect() error {
	if c.state == Disconnected {
		return nil
	}
	_, _ = c.exchange(frame.BuildBareAck(frame.CmdBreak))
	_ = c.transport.Close()
	c.state = Disconnected
	return nil
}

// abandon issues PCMI_BREAK and drains the response without closing the
// transport, returning to Connected — used when a caller stops consuming a
// RecordIter mid-sequence.
func (c *Client) abandon() error {
	_, err := c.exchange(frame.BuildBareAck(frame.CmdBreak))
	c.state = Connected
	return err
}

// abortToDisconnected closes the transport and transitions to Disconnected.
// Every fatal exit path (retry exhaustion, a controller hands-off/start-up
// response, any other terminal protocol error) routes through this so none
// of them leaves the transport open while parking the client in Error.
func (c *Client) abortToDisconnected() {
	_ = c.transport.Close()
	c.state = Disconnected
}

// exchange writes send, reads back exactly one frame, and returns it. It
// does not retry; callers decide retry policy (step does).
func (c *Client) exchange(send []byte) (frame.Frame, error) {
	if err := c.transport.Write(send); err != nil {
		return frame.Frame{}, err
	}
	return c.readFrame()
}

func (c *Client) readFrame() (frame.Frame, error) {
	cmdByte, err := c.transport.Read(1, c.cfg.Timeout)
	if err != nil {
		return frame.Frame{}, err
	}
	cmd := frame.Command(cmdByte[0])

	var buf []byte
	if frame.IsBareAck(cmd) {
		buf = cmdByte
	} else {
		rest, err := c.transport.ReadUntil(frame.CR, c.cfg.Timeout)
		if err != nil {
			return frame.Frame{}, err
		}
		buf = append(cmdByte, rest...)
	}

	f, outcome := frame.Classify(buf)
	if err := frame.Err(outcome); err != nil {
		return frame.Frame{}, err
	}
	return f, nil
}

// step performs one send/read round, retrying at the transport layer (on
// TimeoutError/ChecksumError) up to cfg.MaxRetriesTransport times with the
// same outgoing bytes.
func (c *Client) step(send []byte) (frame.Frame, error) {
	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxRetriesTransport; attempt++ {
		f, err := c.exchange(send)
		if err == nil {
			return f, nil
		}
		lastErr = err
		var timeoutErr *pcmierr.TimeoutError
		var checksumErr *pcmierr.ChecksumError
		if !errors.As(err, &timeoutErr) && !errors.As(err, &checksumErr) {
			return frame.Frame{}, err
		}
		c.log.Warn("pcmi: transport retry %d/%d: %v", attempt+1, c.cfg.MaxRetriesTransport, err)
	}
	return frame.Frame{}, lastErr
}

// stepWithSessionRetry wraps step with the session-level retry counter
// (two independent counters): transport-retry exhaustion,
// and an explicit PCMI_ER_TRY_AGAIN from the controller, both count as one
// session-level retry of the same outgoing frame. Any other error from step
// is not retried: the transport is closed and the error returned as is.
func (c *Client) stepWithSessionRetry(send []byte) (frame.Frame, error) {
	for attempt := 0; attempt < c.cfg.MaxRetriesSession; attempt++ {
		f, err := c.step(send)
		if err == nil {
			if f.Command == frame.CmdErrTryAgain {
				c.log.Warn("pcmi: controller requested try-again, session retry %d/%d", attempt+1, c.cfg.MaxRetriesSession)
				continue
			}
			return f, nil
		}
		var timeoutErr *pcmierr.TimeoutError
		var checksumErr *pcmierr.ChecksumError
		if !errors.As(err, &timeoutErr) && !errors.As(err, &checksumErr) {
			c.abortToDisconnected()
			return frame.Frame{}, err
		}
		c.log.Warn("pcmi: session retry %d/%d after transport exhaustion: %v", attempt+1, c.cfg.MaxRetriesSession, err)
	}
	c.abortToDisconnected()
	return frame.Frame{}, &pcmierr.TimeoutError{Op: "session retries exhausted"}
}

// classifyTerminalError turns a non-data-string response into an error,
// or nil if f is a data-string frame matching one of want.
func classifyTerminalError(f frame.Frame, want []frame.Command) error {
	if frame.IsOneOf(f.Command, want...) {
		return nil
	}
	switch f.Command {
	case frame.CmdErrHandsOff:
		return &pcmierr.ControllerError{Code: byte(frame.CmdErrHandsOff)}
	case frame.CmdErrStartUp:
		return &pcmierr.ControllerError{Code: byte(frame.CmdErrStartUp)}
	}
	if frame.IsControllerError(f.Command) {
		return &pcmierr.ControllerError{Code: byte(f.Command)}
	}
	return &pcmierr.ProtocolError{Reason: fmt.Sprintf("unexpected frame 0x%02X in download", byte(f.Command))}
}
