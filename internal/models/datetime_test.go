package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("210706")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.July, 6, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("991231")
	require.NoError(t, err)
	assert.Equal(t, 1999, d.Year(), "two-digit years above 68 should map to the 1900s")

	_, err = ParseDate("21070")
	assert.Error(t, err, "date field must be exactly six digits")

	_, err = ParseDate("211345")
	assert.Error(t, err, "month 13 is not a date")
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("210706", "1249")
	require.NoError(t, err)
	assert.False(t, dt.IsEndOfDay())
	tod, ok := dt.Time()
	require.True(t, ok)
	assert.Equal(t, 12, tod.Hour())
	assert.Equal(t, 49, tod.Minute())
	assert.Equal(t, "2021-07-06 12:49", dt.String())
}

func TestParseDateTimeEndOfDay(t *testing.T) {
	for _, timeField := range []string{"", "2400", "9999"} {
		dt, err := ParseDateTime("210706", timeField)
		require.NoError(t, err, "time field %q", timeField)
		assert.True(t, dt.IsEndOfDay(), "time field %q should mark end of day", timeField)
		_, ok := dt.Time()
		assert.False(t, ok, "end of day has no time component")
		assert.Equal(t, "2021-07-06Teod", dt.String())
	}
}

func TestParseDateOrTime(t *testing.T) {
	// empty time field yields the date-only variant
	d, err := ParseDateOrTime("210706", "")
	require.NoError(t, err)
	_, ok := d.DateTime()
	assert.False(t, ok, "date-only value has no timed narrowing")
	assert.Equal(t, "2021-07-06", d.String())

	// end-of-day literal yields the end-of-day variant
	d, err = ParseDateOrTime("210706", "2400")
	require.NoError(t, err)
	dt, ok := d.DateTime()
	require.True(t, ok)
	assert.True(t, dt.IsEndOfDay())

	// a real time yields the timed variant
	d, err = ParseDateOrTime("210706", "0930")
	require.NoError(t, err)
	dt, ok = d.DateTime()
	require.True(t, ok)
	assert.False(t, dt.IsEndOfDay())
	assert.Equal(t, "2021-07-06 09:30", d.String())

	_, err = ParseDateOrTime("210706", "93")
	assert.Error(t, err, "time field must be exactly four digits")
}

func TestDateOrTimeWidening(t *testing.T) {
	dt, err := ParseDateTime("210706", "0930")
	require.NoError(t, err)
	widened := DateOrTimeFrom(dt)
	back, ok := widened.DateTime()
	require.True(t, ok)
	assert.True(t, dt.Equal(back), "widening then narrowing should round-trip")
	assert.Equal(t, dt.Date(), widened.Date())
}
