package hexcursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbridge-ag/go-pcmi/hexcursor"
	"github.com/greenbridge-ag/go-pcmi/pcmiendian"
)

func TestReadUint16Swap(t *testing.T) {
	c := hexcursor.New("1234", pcmiendian.Swap{})
	v, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
	assert.Equal(t, 4, c.Pos())
	assert.Equal(t, 0, c.Remaining())
}

func TestReadUint16NonSwap(t *testing.T) {
	c := hexcursor.New("3412", pcmiendian.NonSwap{})
	v, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestReadPastEndFails(t *testing.T) {
	c := hexcursor.New("12", pcmiendian.Swap{})
	_, err := c.ReadUint16()
	require.Error(t, err)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	c := hexcursor.New("0102", pcmiendian.Swap{})
	v, err := c.PeekByte(2)
	require.NoError(t, err)
	assert.Equal(t, byte(0x02), v)
	assert.Equal(t, 0, c.Pos())
}

func TestSkipAndSeek(t *testing.T) {
	c := hexcursor.New("00010203", pcmiendian.Swap{})
	require.NoError(t, c.Skip(2))
	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	require.NoError(t, c.Seek(0))
	b, err = c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), b)
}

func TestReadRemainingHex(t *testing.T) {
	c := hexcursor.New("AABBCC", pcmiendian.Swap{})
	_, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, "BBCC", c.ReadRemainingHex())
}

func TestSwitchStrategyMidRecord(t *testing.T) {
	c := hexcursor.New("1234", pcmiendian.Swap{})
	c.SetStrategy(pcmiendian.NonSwap{})
	v, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3412), v)
}
