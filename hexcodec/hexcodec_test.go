package hexcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/greenbridge-ag/go-pcmi/hexcodec"
)

func TestHexRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.SliceOf(rapid.Byte()).Draw(t, "bytes")
		enc := hexcodec.Encode(b)
		for _, c := range enc {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F'), "encoded output must be uppercase hex")
		}
		dec, err := hexcodec.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, b, dec)
	})
}

func Test2ByteRLIRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		byteCount := rapid.IntRange(0, 0xfffe).Filter(func(n int) bool { return n%2 == 0 }).Draw(t, "byteCount")
		enc, err := hexcodec.Encode2ByteRLI(byteCount)
		require.NoError(t, err)
		dec, err := hexcodec.Decode2ByteRLI(enc)
		require.NoError(t, err)
		assert.Equal(t, byteCount, dec)
	})
}

func TestChecksumScenario(t *testing.T) {
	// PCMI_SERIAL_NUMBER carrying "0899999999"
	region := []byte{0x85, 0x30, 0x38, 0x39, 0x39, 0x39, 0x39, 0x39, 0x39, 0x39, 0x39}
	assert.Equal(t, byte(0xb5), hexcodec.Checksum8(region))
}

func TestDecode2ByteRLILittleEndianScenario(t *testing.T) {
	// "B800" -> 368 (0x00B8 words * 2)
	n, err := hexcodec.Decode2ByteRLI("B800")
	require.NoError(t, err)
	assert.Equal(t, 368, n)
}

func TestDecode1ByteRLI(t *testing.T) {
	n, err := hexcodec.Decode1ByteRLI("0A")
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}

func TestDecodeOddLengthHexFails(t *testing.T) {
	_, err := hexcodec.Decode("ABC")
	require.Error(t, err)
}

func TestVLIWidthByCommand(t *testing.T) {
	assert.Equal(t, 2, hexcodec.VLIHexChars(0x93))
	assert.Equal(t, 4, hexcodec.VLIHexChars(0xb5))
}

func TestDecodeVLI(t *testing.T) {
	n, consumed, err := hexcodec.DecodeVLI("0A", 0x93)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 2, consumed)

	n, consumed, err = hexcodec.DecodeVLI("0A00", 0xb5)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 4, consumed)
}

func TestEncodeDecodeByteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.Byte().Draw(t, "b")
		s := hexcodec.EncodeByte(b)
		require.Len(t, s, 2)
		got, err := hexcodec.DecodeByte(s[0], s[1])
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})
}
