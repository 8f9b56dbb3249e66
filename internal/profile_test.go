package internal

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseStore(t *testing.T, content string) *CredentialStore {
	t.Helper()
	store, err := ParseCredentialStore([]byte(content))
	require.NoError(t, err)
	return store
}

func TestResolveLongTermProfile(t *testing.T) {
	store := mustParseStore(t, `[test]
aws_access_key_id = 1
aws_secret_access_key = 2
aws_mfa_device = 3
`)

	lt, err := ResolveLongTermProfile(store, "test", "")
	require.NoError(t, err)
	assert.Equal(t, &LongTermProfile{Name: "test", AccessKey: "1", SecretKey: "2", MFADevice: "3"}, lt)
}

func TestResolveLongTermProfile_DeviceOverride(t *testing.T) {
	store := mustParseStore(t, `[test]
aws_access_key_id = 1
aws_secret_access_key = 2
aws_mfa_device = 3
`)

	lt, err := ResolveLongTermProfile(store, "test", "override")
	require.NoError(t, err)
	assert.Equal(t, "override", lt.MFADevice)
}

func TestResolveLongTermProfile_DeviceOnlyFromOverride(t *testing.T) {
	store := mustParseStore(t, `[test]
aws_access_key_id = 1
aws_secret_access_key = 2
`)

	lt, err := ResolveLongTermProfile(store, "test", "arn:aws:iam::1:mfa/me")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::1:mfa/me", lt.MFADevice)
}

func TestResolveLongTermProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "not found",
			content: "[other]\naws_access_key_id = 1\n",
			want:    ErrProfileNotFound,
		},
		{
			name:    "empty store",
			content: "",
			want:    ErrProfileNotFound,
		},
		{
			name:    "duplicate sections",
			content: "[test]\naws_access_key_id = 1\n[test]\naws_access_key_id = 2\n",
			want:    ErrMultipleProfilesFound,
		},
		{
			name:    "no access key",
			content: "[test]\naws_secret_access_key = 2\naws_mfa_device = 3\n",
			want:    ErrNoAccessKey,
		},
		{
			name:    "no secret key",
			content: "[test]\naws_access_key_id = 1\naws_mfa_device = 3\n",
			want:    ErrNoSecretKey,
		},
		{
			name:    "no mfa device",
			content: "[test]\naws_access_key_id = 1\naws_secret_access_key = 2\n",
			want:    ErrNoMFADevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mustParseStore(t, tt.content)

			lt, err := ResolveLongTermProfile(store, "test", "")
			require.Error(t, err)
			assert.Nil(t, lt)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), `"test"`)
		})
	}
}

func TestResolveLongTermProfile_Hints(t *testing.T) {
	store := mustParseStore(t, "[test]\naws_access_key_id = 1\naws_secret_access_key = 2\n")

	_, err := ResolveLongTermProfile(store, "test", "")
	require.Error(t, err)
	hints := errors.GetAllHints(err)
	require.NotEmpty(t, hints)
	assert.Contains(t, hints[0], "--device")
}
