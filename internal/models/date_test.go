package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScanNormalizesDriverValues(t *testing.T) {
	// The postgres driver hands DATE columns back as time.Time.
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2026-03-02"), d)

	// SQLite hands back the stored text.
	require.NoError(t, d.Scan("2026-03-02"))
	assert.Equal(t, Date("2026-03-02"), d)

	// A textual value carrying a time-of-day suffix is trimmed to the date.
	require.NoError(t, d.Scan("2026-03-02T00:00:00Z"))
	assert.Equal(t, Date("2026-03-02"), d)

	require.NoError(t, d.Scan([]byte("2026-03-02 00:00:00+00")))
	assert.Equal(t, Date("2026-03-02"), d)

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, Date(""), d)

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := Date("2026-03-02").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", v)
}
