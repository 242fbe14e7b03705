package record

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTemperatureNaNSentinelNeverCollapsesToZero(t *testing.T) {
	temp := NewTemperature(0x7fff)
	require.True(t, temp.IsAbsent())

	_, ok := temp.Fahrenheit()
	require.False(t, ok)
	_, ok = temp.Celsius()
	require.False(t, ok)
	require.Equal(t, "NaN", temp.String())
}

func TestTemperatureFahrenheitConversion(t *testing.T) {
	temp := NewTemperature(725) // 72.5F
	f, ok := temp.Fahrenheit()
	require.True(t, ok)
	require.InDelta(t, 72.5, f, 0.001)
	require.Equal(t, "72.5F", temp.String())
}

func TestTemperatureRoundTripsViaRapid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := int16(rapid.IntRange(-32768, 32767).Draw(rt, "raw"))
		rapid.Assume(raw != 0x7fff)

		temp := NewTemperature(raw)
		require.False(rt, temp.IsAbsent())

		f, ok := temp.Fahrenheit()
		require.True(rt, ok)
		require.Equal(rt, raw, FromFahrenheit(f).Raw())
	})
}
