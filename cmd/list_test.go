package cmd

import (
	"testing"
	"time"

	"github.com/chukul/mfaws/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listCredentials = `[default]
aws_access_key_id = AKIA
aws_secret_access_key = secret

[default-short-term]
expiration = 2024-01-01T01:00:00Z
aws_session_token = t

[default_123456789012-role-admin-mfa-user_short-term]
assumed_role_arn = arn:aws:iam::123456789012:role/admin
expiration = 2023-12-31T00:00:00Z

[dup]
aws_access_key_id = 1

[dup]
aws_access_key_id = 2
`

func TestProfileStatuses(t *testing.T) {
	store, err := internal.ParseCredentialStore([]byte(listCredentials))
	require.NoError(t, err)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	statuses := profileStatuses(store, internal.DefaultShortTermSuffix, now)
	require.Len(t, statuses, 4)

	assert.Equal(t, "default", statuses[0].Profile)
	assert.Equal(t, "long-term", statuses[0].Kind)
	assert.Equal(t, "ACTIVE", statuses[0].Status)
	assert.Empty(t, statuses[0].Expiration)

	assert.Equal(t, "short-term", statuses[1].Kind)
	assert.Equal(t, "ACTIVE", statuses[1].Status)
	assert.Equal(t, "1h", statuses[1].Remaining)
	assert.NotEmpty(t, statuses[1].Expiration)

	assert.Equal(t, "EXPIRED", statuses[2].Status)
	assert.Equal(t, "arn:aws:iam::123456789012:role/admin", statuses[2].RoleArn)

	assert.Equal(t, "dup", statuses[3].Profile)
	assert.Equal(t, "DUPLICATE", statuses[3].Status)
}

func TestShortTermProfiles(t *testing.T) {
	store, err := internal.ParseCredentialStore([]byte(listCredentials))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"default-short-term",
		"default_123456789012-role-admin-mfa-user_short-term",
	}, shortTermProfiles(store, internal.DefaultShortTermSuffix))

	assert.Empty(t, shortTermProfiles(store, "tmp"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Len(t, truncateText("a-very-long-profile-name-that-overflows", 10), 10)
}
