package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeDeviceParametersSensor(t *testing.T) {
	payload := "0006000190000104006400C8"

	dr, err := DecodeDeviceParameters(payload, 0x90)
	require.NoError(t, err)
	require.Equal(t, DeviceAirSensor, dr.DeviceType)
	require.Equal(t, 1, dr.Index)
	require.Equal(t, 6, dr.Header.RecordSizeWords)

	params, ok := dr.Tail.(SensorParameters)
	require.True(t, ok)
	require.Equal(t, NewTemperature(100), params.AlarmLow)
	require.Equal(t, NewTemperature(200), params.AlarmHigh)
}

func TestDecodeDeviceVariablesPosition(t *testing.T) {
	payload := "00050002920004023700"

	dr, err := DecodeDeviceVariables(payload, 0x92)
	require.NoError(t, err)
	require.Equal(t, DeviceCurtain, dr.DeviceType)
	require.Equal(t, 2, dr.Index)

	vars, ok := dr.Tail.(PositionVariables)
	require.True(t, ok)
	require.Equal(t, byte(55), vars.PositionPct)
}

func TestDecodeDeviceParametersUnknownTypePreservesRaw(t *testing.T) {
	payload := "0006000190006304DEADBEEF"

	dr, err := DecodeDeviceParameters(payload, 0x90)
	require.NoError(t, err)
	require.Equal(t, DeviceType(0x63), dr.DeviceType)

	unknown, ok := dr.Tail.(UnknownDevice)
	require.True(t, ok)
	require.Equal(t, "DEADBEEF", unknown.Raw)
}

func TestLookupDeviceCoversAllRegisteredTypes(t *testing.T) {
	known := []DeviceType{
		DeviceAirSensor, DeviceHumiditySensor, DeviceInlet, DeviceCurtain,
		DeviceRidgeVent, DeviceHeater, DeviceCoolPad, DeviceFan, DeviceTimed,
		DeviceFeedSensor, DeviceWaterSensor, DeviceStaticSensor, DeviceDigitalSensor,
		DevicePositionSensor, DeviceChimney, DeviceSwitch, DeviceVariableHeater,
		DeviceVFDFan, DeviceV10Lights, DeviceGasSensor,
	}
	for _, dt := range known {
		_, ok := lookupDevice(dt)
		require.Truef(t, ok, "expected %s to be registered", dt)
	}

	_, ok := lookupDevice(DeviceType(0xFE))
	require.False(t, ok)
}
