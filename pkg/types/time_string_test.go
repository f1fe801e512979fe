package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"padded", "14:00", "14:00", false},
		{"single digit hour", "9:30", "09:30", false},
		{"midnight", "00:00", "00:00", false},
		{"with spaces", " 23:30 ", "23:30", false},
		{"hour out of range", "24:00", "", true},
		{"minute out of range", "10:60", "", true},
		{"missing minutes", "10", "", true},
		{"single digit minutes", "10:5", "", true},
		{"empty", "", "", true},
		{"letters", "ab:cd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutesWrapsMidnight(t *testing.T) {
	got, err := TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	got, err = TimeString("05:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("06:00"), got)

	_, err = TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Format12h(t *testing.T) {
	assert.Equal(t, "12:00 AM", TimeString("00:00").Format12h())
	assert.Equal(t, "12:30 PM", TimeString("12:30").Format12h())
	assert.Equal(t, "11:00 PM", TimeString("23:00").Format12h())
	assert.Equal(t, "1:00 AM", TimeString("01:00").Format12h())
	assert.Equal(t, "2:00 PM", TimeString("14:00").Format12h())
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("05:00").IsBefore("05:30"))
	assert.True(t, TimeString("23:00").IsAfter("14:00"))
	assert.False(t, TimeString("14:00").IsBefore("14:00"))
	assert.Equal(t, 5*60+30, TimeString("05:30").Minutes())
	assert.Equal(t, -1, TimeString("oops").Minutes())
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Time TimeString `json:"time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"time":"9:00"}`), &payload))
	assert.Equal(t, TimeString("09:00"), payload.Time)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"09:00"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"time":"25:00"}`), &payload))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("01:00")))
	assert.Equal(t, TimeString("01:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 6, 10, 22, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("22:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
