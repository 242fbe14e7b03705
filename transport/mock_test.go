package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMockTransportReadReturnsQueuedBytes(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Open())
	m.QueueResponse([]byte("ABCD"))

	got, err := m.Read(2, time.Second)
	require.NoError(t, err)
	require.Equal(t, []byte("AB"), got)

	got, err = m.Read(2, time.Second)
	require.NoError(t, err)
	require.Equal(t, []byte("CD"), got)
}

func TestMockTransportReadAcrossMultipleQueuedChunks(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Open())
	m.QueueResponse([]byte("AB"))
	m.QueueResponse([]byte("CD"))

	got, err := m.Read(3, time.Second)
	require.NoError(t, err)
	require.Equal(t, []byte("ABC"), got)
}

func TestMockTransportReadTimesOutWhenStarved(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Open())
	m.QueueResponse([]byte("A"))

	_, err := m.Read(5, time.Second)
	require.Error(t, err)
}

func TestMockTransportReadUntilTerminator(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Open())
	m.QueueResponse([]byte("1234\rREST"))

	got, err := m.ReadUntil(0x0d, time.Second)
	require.NoError(t, err)
	require.Equal(t, []byte("1234\r"), got)
}

func TestMockTransportWriteRequiresOpen(t *testing.T) {
	m := NewMock()
	err := m.Write([]byte("x"))
	require.Error(t, err)
}

func TestMockTransportRecordsWrites(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Open())
	require.NoError(t, m.Write([]byte("hello")))
	require.NoError(t, m.Write([]byte("world")))

	require.Equal(t, [][]byte{[]byte("hello"), []byte("world")}, m.Writes())
}

func TestMockTransportDiscardBuffersDropsPending(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Open())
	m.QueueResponse([]byte("ABCDEF"))

	_, err := m.Read(2, time.Second)
	require.NoError(t, err)

	require.NoError(t, m.DiscardBuffers())

	m.QueueResponse([]byte("ZZ"))
	got, err := m.Read(2, time.Second)
	require.NoError(t, err)
	require.Equal(t, []byte("ZZ"), got)
}
