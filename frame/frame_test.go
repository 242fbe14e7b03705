package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbridge-ag/go-pcmi/frame"
	"github.com/greenbridge-ag/go-pcmi/hexcodec"
)

func TestClassifyBareAck(t *testing.T) {
	f, outcome := frame.Classify([]byte{0x86})
	require.Equal(t, frame.OutcomeFrame, outcome)
	assert.Equal(t, frame.CmdSnAck, f.Command)
	assert.Empty(t, f.Payload)
}

func TestClassifyControllerErrorIsBareAck(t *testing.T) {
	f, outcome := frame.Classify([]byte{0xca})
	require.Equal(t, frame.OutcomeFrame, outcome)
	assert.Equal(t, frame.CmdErrTryAgain, f.Command)
}

func TestClassifyNeedMore(t *testing.T) {
	_, outcome := frame.Classify([]byte{0x96, '0'})
	assert.Equal(t, frame.OutcomeNeedMore, outcome)
}

func TestClassifyRLIRecordRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	rliHex, err := hexcodec.Encode1ByteRLI(len(payload))
	require.NoError(t, err)
	region := append([]byte{byte(frame.CmdZoneParmData)}, []byte(rliHex)...)
	region = append(region, []byte(hexcodec.Encode(payload))...)
	checksum := hexcodec.Checksum8(region)
	buf := append(region, []byte(hexcodec.EncodeByte(checksum))...)
	buf = append(buf, frame.CR)

	f, outcome := frame.Classify(buf)
	require.Equal(t, frame.OutcomeFrame, outcome)
	assert.Equal(t, frame.CmdZoneParmData, f.Command)
	assert.Equal(t, hexcodec.Encode(payload), f.Payload)
}

func TestClassifyBadChecksum(t *testing.T) {
	payload := []byte{0x01, 0x02}
	rliHex, err := hexcodec.Encode1ByteRLI(len(payload))
	require.NoError(t, err)
	buf := []byte{byte(frame.CmdZoneParmData)}
	buf = append(buf, []byte(rliHex)...)
	buf = append(buf, []byte(hexcodec.Encode(payload))...)
	buf = append(buf, []byte("FF")...) // deliberately wrong checksum
	buf = append(buf, frame.CR)

	_, outcome := frame.Classify(buf)
	assert.Equal(t, frame.OutcomeBadChecksum, outcome)
}

func TestBuildSerialNumberChecksumScenario(t *testing.T) {
		out, err := frame.BuildSerialNumber("99999999")
	require.NoError(t, err)
	require.Equal(t, frame.STX, out[0])
	require.Equal(t, frame.ETX, out[len(out)-1])
	checksumHex := string(out[len(out)-3 : len(out)-1])
	assert.Equal(t, "B5", checksumHex)
}

func TestBuildSerialNumberRejectsWrongLength(t *testing.T) {
	_, err := frame.BuildSerialNumber("123")
	require.Error(t, err)
}

func TestIsExtendedAndControllerError(t *testing.T) {
	assert.True(t, frame.IsExtended(frame.CmdZoneParmExt))
	assert.False(t, frame.IsExtended(frame.CmdZoneParmData))
	assert.True(t, frame.IsControllerError(frame.CmdErrGeneric))
	assert.False(t, frame.IsControllerError(frame.CmdOkSendNext))
}
