package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecodeAlarmEntry(t *testing.T) {
	payload := "00070005A500" + "07" + "00000014" + "09" + "05" + "01"

	a, err := DecodeAlarmEntry(payload, 0xA5)
	require.NoError(t, err)
	require.Equal(t, 7, a.Header.RecordSizeWords)
	require.Equal(t, 5, a.Header.ID)
	require.Equal(t, byte(9), a.AlarmCode)
	require.Equal(t, 5, a.Zone)
	require.True(t, a.Active)
	require.Equal(t, historyEpoch.Add(20*time.Second), a.Timestamp)
	require.Contains(t, a.String(), "active")
}

func TestDecodeAlarmEntryInactiveFlag(t *testing.T) {
	payload := "00070005A500" + "07" + "00000014" + "09" + "05" + "00"

	a, err := DecodeAlarmEntry(payload, 0xA5)
	require.NoError(t, err)
	require.False(t, a.Active)
	require.Contains(t, a.String(), "cleared")
}
