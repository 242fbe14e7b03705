package session

import (
	"errors"

	"github.com/greenbridge-ag/go-pcmi/frame"
	"github.com/greenbridge-ag/go-pcmi/pcmierr"
	"github.com/greenbridge-ag/go-pcmi/record"
)

// RecordIter is a lazy, pull-style cursor over one download's records: at
// most one record is ever buffered ahead of the caller, and stopping
// partway through issues PCMI_BREAK rather than draining the rest of the
// controller's records.
type RecordIter[T any] struct {
	client   *Client
	dataCmds []frame.Command
	decode   func(payload string, cmd byte) (T, error)

	// pending holds a data-string frame already read off the wire (the
	// request's own reply) that the next Next() call should decode instead
	// of pulling a new one, so newDownload never reads more than the one
	// frame needed to tell an empty result set from a populated one.
	pending *frame.Frame

	done bool
	err  error
}

// Next pulls the next record. It reports (zero, false, nil) at
// PCMI_END_OF_RECORD, which ends the download: every later Next() call
// repeats (zero, false, nil) without touching the wire. A record-level
// decode error (*pcmierr.ParseError) reports (zero, false, err) for that
// record only — the download is not aborted, and the following Next() call
// pulls the next record as usual. Any other error aborts the download:
// Next() repeats (zero, false, err) on every later call without touching
// the wire, and the client is left Disconnected.
func (it *RecordIter[T]) Next() (T, bool, error) {
	var zero T

	if it.pending != nil {
		f := *it.pending
		it.pending = nil
		return it.decodeFrame(f)
	}
	if it.done {
		return zero, false, it.err
	}

	f, err := it.client.stepWithSessionRetry(frame.BuildBareAck(frame.CmdOkSendNext))
	if err != nil {
		return it.fail(err)
	}
	if f.Command == frame.CmdEndOfRecord {
		it.done = true
		it.client.state = Connected
		return zero, false, nil
	}
	if err := classifyTerminalError(f, it.dataCmds); err != nil {
		return it.fail(err)
	}
	return it.decodeFrame(f)
}

func (it *RecordIter[T]) decodeFrame(f frame.Frame) (T, bool, error) {
	var zero T
	v, err := it.decode(f.Payload, byte(f.Command))
	if err != nil {
		var parseErr *pcmierr.ParseError
		if errors.As(err, &parseErr) {
			// Fatal to this record only; the download keeps going and the
			// next Next() call still requests the following record.
			return zero, false, err
		}
		return it.fail(err)
	}
	return v, true, nil
}

func (it *RecordIter[T]) fail(err error) (T, bool, error) {
	var zero T
	it.done = true
	it.err = err
	it.client.abortToDisconnected()
	return zero, false, err
}

// Close abandons the download early if it has not already ended, issuing
// PCMI_BREAK and returning the client to Connected. Safe to call after the
// iterator has already run to completion or errored.
func (it *RecordIter[T]) Close() error {
	if it.done {
		return nil
	}
	it.done = true
	return it.client.abandon()
}

// newDownload sends the request command, expects the controller's first
// data string (or PCMI_END_OF_RECORD for an empty result set) in reply, and
// returns a RecordIter primed to pull the rest one PCMI_OK_SEND_NEXT at a
// time.
func newDownload[T any](c *Client, reqCmd frame.Command, dataCmds []frame.Command, decode func(payload string, cmd byte) (T, error)) (*RecordIter[T], error) {
	if c.state != Connected {
		return nil, &pcmierr.ProtocolError{Reason: "download requested outside Connected state"}
	}
	c.state = Downloading

	it := &RecordIter[T]{client: c, dataCmds: dataCmds, decode: decode}

	f, err := c.stepWithSessionRetry(frame.BuildBareAck(reqCmd))
	if err != nil {
		// stepWithSessionRetry already closed the transport and went
		// Disconnected on its own retry exhaustion.
		return nil, err
	}
	if f.Command == frame.CmdEndOfRecord {
		it.done = true
		c.state = Connected
		return it, nil
	}
	if err := classifyTerminalError(f, dataCmds); err != nil {
		c.abortToDisconnected()
		return nil, err
	}

	it.pending = &f
	return it, nil
}

// DownloadZoneParameters requests PCMI_SEND_ZONE_PARM.
func (c *Client) DownloadZoneParameters() (*RecordIter[record.ZoneParameters], error) {
	one, ext := frame.ZoneParmVariants()
	return newDownload(c, frame.CmdSendZoneParm, []frame.Command{one, ext}, func(payload string, _ byte) (record.ZoneParameters, error) {
		return record.DecodeZoneParameters(payload)
	})
}

// DownloadZoneVariables requests PCMI_SEND_ZONE_VAR.
func (c *Client) DownloadZoneVariables() (*RecordIter[record.ZoneVariables], error) {
	one, ext := frame.ZoneVarVariants()
	return newDownload(c, frame.CmdSendZoneVar, []frame.Command{one, ext}, func(payload string, _ byte) (record.ZoneVariables, error) {
		return record.DecodeZoneVariables(payload)
	})
}

// DownloadDeviceParameters requests PCMI_SEND_PARM.
func (c *Client) DownloadDeviceParameters() (*RecordIter[record.DeviceRecord], error) {
	one, ext := frame.ParmVariants()
	return newDownload(c, frame.CmdSendParm, []frame.Command{one, ext}, record.DecodeDeviceParameters)
}

// DownloadDeviceVariables requests PCMI_SEND_VAR.
func (c *Client) DownloadDeviceVariables() (*RecordIter[record.DeviceRecord], error) {
	one, ext := frame.VarVariants()
	return newDownload(c, frame.CmdSendVar, []frame.Command{one, ext}, record.DecodeDeviceVariables)
}

// DownloadHistory requests PCMI_SEND_HISTORY.
func (c *Client) DownloadHistory() (*RecordIter[record.HistoryEntry], error) {
	one, ext := frame.HistoryVariants()
	return newDownload(c, frame.CmdSendHistory, []frame.Command{one, ext}, record.DecodeHistoryEntry)
}

// DownloadAlarms requests PCMI_SEND_ALARM.
func (c *Client) DownloadAlarms() (*RecordIter[record.AlarmEntry], error) {
	one, ext := frame.AlarmVariants()
	return newDownload(c, frame.CmdSendAlarm, []frame.Command{one, ext}, record.DecodeAlarmEntry)
}

// DownloadVersion requests PCMI_SEND_VERSION, a single CR-delimited record
// with no RLI framing and no flow-control dialogue: one reply ends it.
func (c *Client) DownloadVersion() (record.Version, error) {
	if c.state != Connected {
		return record.Version{}, &pcmierr.ProtocolError{Reason: "download requested outside Connected state"}
	}
	c.state = Downloading
	defer func() {
		if c.state == Downloading {
			c.state = Connected
		}
	}()

	f, err := c.stepWithSessionRetry(frame.BuildBareAck(frame.CmdSendVersion))
	if err != nil {
		// stepWithSessionRetry already closed the transport and went
		// Disconnected on its own retry exhaustion.
		return record.Version{}, err
	}
	if err := classifyTerminalError(f, []frame.Command{frame.CmdVersionData}); err != nil {
		c.abortToDisconnected()
		return record.Version{}, err
	}
	return record.DecodeVersion(f.Payload)
}
