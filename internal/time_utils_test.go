package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, ""},
		{500 * time.Millisecond, ""},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m"},
		{3599 * time.Second, "59m 59s"},
		{3600 * time.Second, "1h"},
		{3601 * time.Second, "1h 1s"},
		{3661 * time.Second, "1h 1m 1s"},
		{43200 * time.Second, "12h"},
		{36*time.Hour + 1500*time.Millisecond, "36h 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestFormatExpiration(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 1, 1, 2, 0, 0, 0, loc)

	assert.Equal(t, "2024-01-01T00:00:00Z", FormatExpiration(ts))

	parsed, err := ParseExpiration(" 2024-01-01T00:00:00Z ")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestRemainingValidity(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		content   string
		want      string
		wantValid bool
	}{
		{
			name:      "one hour left",
			content:   "[test]\nexpiration = 2024-01-01T01:00:00Z\n",
			want:      "1h",
			wantValid: true,
		},
		{
			name:      "offset timestamp",
			content:   "[test]\nexpiration = 2024-01-01T02:30:00+02:00\n",
			want:      "30m",
			wantValid: true,
		},
		{
			name:    "expired",
			content: "[test]\nexpiration = 2023-12-31T23:59:59Z\n",
		},
		{
			name:    "no expiration",
			content: "[test]\naws_session_token = x\n",
		},
		{
			name:    "unparsable expiration",
			content: "[test]\nexpiration = tomorrow\n",
		},
		{
			name:    "no section",
			content: "[other]\nexpiration = 2024-01-01T01:00:00Z\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mustParseStore(t, tt.content)

			got, ok := RemainingValidity(store, "test", now)
			assert.Equal(t, tt.wantValid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
