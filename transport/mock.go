package transport

import (
	"fmt"
	"sync"
	"time"

	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// MockTransport is a canned-response queue standing in for a physical
// link in tests — a drop-in Transport, grounded on
// spirilis-smacbase's documented pattern of treating the PHY as a
// replaceable io.ReadWriteCloser so test harnesses can substitute it.
type MockTransport struct {
	mu        sync.Mutex
	open      bool
	responses [][]byte
	pending   []byte
	writes    [][]byte
}

// NewMock creates an unopened MockTransport with no queued responses.
func NewMock() *MockTransport {
	return &MockTransport{}
}

// QueueResponse appends b to the queue of bytes future Read/ReadUntil
// calls will hand back, in order.
func (m *MockTransport) QueueResponse(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(b))
	copy(cp, b)
	m.responses = append(m.responses, cp)
}

// Writes returns every byte slice written so far, for test assertions.
func (m *MockTransport) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	copy(out, m.writes)
	return out
}

func (m *MockTransport) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	return nil
}

func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return nil
}

func (m *MockTransport) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *MockTransport) Write(b []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return &pcmierr.TransportError{Op: "write", Err: fmt.Errorf("mock transport is not open")}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	m.writes = append(m.writes, cp)
	return nil
}

// fill tops up m.pending from the queued responses until it has at least n
// bytes or the queue runs dry.
func (m *MockTransport) fill(n int) {
	for len(m.pending) < n && len(m.responses) > 0 {
		m.pending = append(m.pending, m.responses[0]...)
		m.responses = m.responses[1:]
	}
}

func (m *MockTransport) Read(n int, _ time.Duration) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return nil, &pcmierr.TransportError{Op: "read", Err: fmt.Errorf("mock transport is not open")}
	}
	m.fill(n)
	if len(m.pending) < n {
		return nil, &pcmierr.TimeoutError{Op: "read"}
	}
	out := m.pending[:n]
	m.pending = m.pending[n:]
	return out, nil
}

func (m *MockTransport) ReadUntil(terminator byte, _ time.Duration) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return nil, &pcmierr.TransportError{Op: "read_until", Err: fmt.Errorf("mock transport is not open")}
	}
	for {
		if idx := indexByte(m.pending, terminator); idx >= 0 {
			out := m.pending[:idx+1]
			m.pending = m.pending[idx+1:]
			return out, nil
		}
		if len(m.responses) == 0 {
			return nil, &pcmierr.TimeoutError{Op: "read_until"}
		}
		m.pending = append(m.pending, m.responses[0]...)
		m.responses = m.responses[1:]
	}
}

func (m *MockTransport) DiscardBuffers() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
	return nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

var _ Transport = (*MockTransport)(nil)
