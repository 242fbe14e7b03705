package transport

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/term"
	"github.com/warthog618/go-gpiocdev"
	"golang.org/x/sys/unix"

	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// SerialConfig describes the RS-485 link a SerialTransport opens.
// Defaults: 19200 baud, mark parity, 8 data bits, 1 stop.
type SerialConfig struct {
	Device   string
	BaudRate int // default 19200

	// GPIOChip/GPIOLine, if GPIOChip is non-empty, name a DE/RE
	// driver-enable line SerialTransport toggles high for the duration of
	// each Write and low afterward, for half-duplex RS-485 transceivers
	// that need it. Left empty, no GPIO is touched.
	GPIOChip string
	GPIOLine int
}

func (c SerialConfig) baud() int {
	if c.BaudRate == 0 {
		return 19200
	}
	return c.BaudRate
}

// SerialTransport is the production RS-485 Transport. It opens the tty
// through github.com/pkg/term (grounded on doismellburning-samoyed's
// serial_port.go), then reaches into the raw termios via
// golang.org/x/sys/unix to set mark parity — pkg/term's portable option
// set (like jacobsa/go-serial's, used by spirilis-smacbase) only exposes
// none/odd/even parity, not the CMSPAR "odd parity with the mark bit
// forced" trick this bus's 9-bit addressing needs.
type SerialTransport struct {
	cfg SerialConfig

	mu   sync.Mutex
	fd   *term.Term
	deRE *gpiocdev.Line
	open bool
}

// NewSerial creates an unopened SerialTransport for cfg.
func NewSerial(cfg SerialConfig) *SerialTransport {
	return &SerialTransport{cfg: cfg}
}

func (s *SerialTransport) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return nil
	}

	fd, err := term.Open(s.cfg.Device, term.Speed(s.cfg.baud()), term.RawMode)
	if err != nil {
		return &pcmierr.TransportError{Op: "open", Err: err}
	}
	if err := setMarkParity(fd.Fd()); err != nil {
		fd.Close()
		return &pcmierr.TransportError{Op: "open:mark-parity", Err: err}
	}

	var line *gpiocdev.Line
	if s.cfg.GPIOChip != "" {
		line, err = gpiocdev.RequestLine(s.cfg.GPIOChip, s.cfg.GPIOLine, gpiocdev.AsOutput(0))
		if err != nil {
			fd.Close()
			return &pcmierr.TransportError{Op: "open:gpio", Err: err}
		}
	}

	s.fd = fd
	s.deRE = line
	s.open = true
	return nil
}

// setMarkParity sets PARENB|CMSPAR|PARODD on the tty's termios, the
// standard Linux way to force mark parity (a fixed, always-1, 9th bit)
// rather than computed odd/even parity.
func setMarkParity(fd uintptr) error {
	t, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.Cflag |= unix.PARENB | unix.CMSPAR | unix.PARODD
	if err := unix.IoctlSetTermios(int(fd), unix.TCSETS, t); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	return nil
}

func (s *SerialTransport) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	var err error
	if s.deRE != nil {
		if cerr := s.deRE.Close(); cerr != nil {
			err = cerr
		}
		s.deRE = nil
	}
	if cerr := s.fd.Close(); cerr != nil && err == nil {
		err = cerr
	}
	s.open = false
	if err != nil {
		return &pcmierr.TransportError{Op: "close", Err: err}
	}
	return nil
}

func (s *SerialTransport) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *SerialTransport) Write(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return &pcmierr.TransportError{Op: "write", Err: fmt.Errorf("serial transport is not open")}
	}

	if s.deRE != nil {
		if err := s.deRE.SetValue(1); err != nil {
			return &pcmierr.TransportError{Op: "write:gpio-enable", Err: err}
		}
		defer func() {
			// let the last stop bit clear the wire before releasing the driver
			time.Sleep(time.Millisecond)
			s.deRE.SetValue(0)
		}()
	}

	written := 0
	for written < len(b) {
		n, err := s.fd.Write(b[written:])
		if err != nil {
			return &pcmierr.TransportError{Op: "write", Err: err}
		}
		written += n
	}
	return nil
}

func (s *SerialTransport) Read(n int, timeout time.Duration) ([]byte, error) {
	return s.readWithDeadline(timeout, func(buf []byte) bool {
		return len(buf) >= n
	})
}

func (s *SerialTransport) ReadUntil(terminator byte, timeout time.Duration) ([]byte, error) {
	return s.readWithDeadline(timeout, func(buf []byte) bool {
		return len(buf) > 0 && buf[len(buf)-1] == terminator
	})
}

// readWithDeadline reads one byte at a time on a dedicated goroutine,
// appending to an accumulator until done reports true, and races that
// against timeout. The goroutine is necessary because pkg/term's blocking
// Read has no portable per-call deadline; a bounded wait is required. A timed-
// out read leaves its goroutine to finish naturally in the background and
// its result is discarded — acceptable because the next call always opens
// a fresh read rather than trying to resume a stale one.
func (s *SerialTransport) readWithDeadline(timeout time.Duration, done func(buf []byte) bool) ([]byte, error) {
	type result struct {
		buf []byte
		err error
	}
	resultCh := make(chan result, 1)

	go func() {
		var buf []byte
		chunk := make([]byte, 1)
		for !done(buf) {
			n, err := s.fd.Read(chunk)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if n > 0 {
				buf = append(buf, chunk[:n]...)
			}
		}
		resultCh <- result{buf: buf}
	}()

	select {
	case r := <-resultCh:
		if r.err != nil {
			return nil, &pcmierr.TransportError{Op: "read", Err: r.err}
		}
		return r.buf, nil
	case <-time.After(timeout):
		return nil, &pcmierr.TimeoutError{Op: "read"}
	}
}

func (s *SerialTransport) DiscardBuffers() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	if err := unix.IoctlSetInt(int(s.fd.Fd()), unix.TCFLSH, unix.TCIOFLUSH); err != nil {
		return &pcmierr.TransportError{Op: "discard_buffers", Err: err}
	}
	return nil
}

var _ Transport = (*SerialTransport)(nil)
