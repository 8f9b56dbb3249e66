package internal

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ProfileName:     DefaultProfileName,
		ShortTermSuffix: DefaultShortTermSuffix,
		Region:          DefaultRegion,
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty profile", func(c *Config) { c.ProfileName = "" }},
		{"empty suffix", func(c *Config) { c.ShortTermSuffix = "" }},
		{"profile ends with suffix", func(c *Config) { c.ProfileName = "default-short-term" }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigValidation))
		})
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"session token", Request{Action: ActionSessionToken}, false},
		{"assume role", Request{Action: ActionAssumeRole, RoleARN: "arn:aws:iam::1:role/r", RoleSessionName: "s"}, false},
		{"missing role", Request{Action: ActionAssumeRole, RoleSessionName: "s"}, true},
		{"invalid role", Request{Action: ActionAssumeRole, RoleARN: "not-an-arn", RoleSessionName: "s"}, true},
		{"missing session name", Request{Action: ActionAssumeRole, RoleARN: "arn:aws:iam::1:role/r"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigValidation))
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(io.Discard, "")
	require.NoError(t, err)

	_, err = NewLogger(io.Discard, "debug")
	require.NoError(t, err)

	_, err = NewLogger(io.Discard, "loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigValidation))
}
