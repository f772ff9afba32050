package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30am")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	_, err = NewTimeStringFromMinutes(-15)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(1440)
	assert.Error(t, err)
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("14:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+45, minutes)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("14:00")

	end, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "15:30", end.String())

	// Выход за границы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("10:00").IsAfter(TimeString("09:59")))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15"))
	assert.Equal(t, "10:15", ts.String())

	// Время из колонки TIME приходит с секундами
	require.NoError(t, ts.Scan("10:15:00"))
	assert.Equal(t, "10:15", ts.String())

	require.NoError(t, ts.Scan([]byte("08:05")))
	assert.Equal(t, "08:05", ts.String())
}
