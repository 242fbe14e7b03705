package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeZoneParameters(t *testing.T) {
	payload := "00080001000100B900FA000A02146404"

	zp, err := DecodeZoneParameters(payload)
	require.NoError(t, err)
	require.Equal(t, 1, zp.Zone)
	require.Equal(t, NewTemperature(0x00B9), zp.HeatSetpoint)
	require.Equal(t, NewTemperature(0x00FA), zp.CoolSetpoint)
	require.Equal(t, int16(0x000A), zp.StaticSetpointTenthsInWC)
	require.Equal(t, byte(2), zp.VentStages)
	require.Equal(t, byte(0x14), zp.MinVentPct)
	require.Equal(t, byte(0x64), zp.MaxVentPct)
	require.Equal(t, byte(4), zp.HeadCount)
	require.False(t, zp.HasLongHeadCount)
}

func TestDecodeZoneParametersRejectsZoneOutOfRange(t *testing.T) {
	// same record but id=0, an invalid zone number
	payload := "00080000000100B900FA000A02146404"
	_, err := DecodeZoneParameters(payload)
	require.Error(t, err)
}

func TestDecodeZoneParametersLongHeadCount(t *testing.T) {
	// record_format=3 (>= longHeadCountFormat), 2 extra bytes carrying a
	// 16-bit head count
	payload := "00090001000300B900FA000A021464040005"
	zp, err := DecodeZoneParameters(payload)
	require.NoError(t, err)
	require.True(t, zp.HasLongHeadCount)
	require.Equal(t, uint16(5), zp.LongHeadCount)
}
