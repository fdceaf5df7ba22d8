package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-25")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year)
	assert.Equal(t, time.May, d.Month)
	assert.Equal(t, 25, d.Day)

	_, err = ParseDate("25/05/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOrdering(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		before bool
	}{
		{"same day", "2025-05-25", "2025-05-25", false},
		{"earlier day", "2025-05-24", "2025-05-25", true},
		{"earlier month", "2025-04-30", "2025-05-01", true},
		{"earlier year", "2024-12-31", "2025-01-01", true},
		{"later day", "2025-05-26", "2025-05-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustDate(tt.a), MustDate(tt.b)
			assert.Equal(t, tt.before, a.Before(b))
			assert.Equal(t, tt.before, b.After(a))
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustDate("2024-11-15")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-11-15"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDateOf_StripsTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.May, 25, 23, 59, 59, 0, time.UTC)
	early := time.Date(2025, time.May, 25, 0, 0, 1, 0, time.UTC)
	assert.True(t, DateOf(late).Equal(DateOf(early)))
}
