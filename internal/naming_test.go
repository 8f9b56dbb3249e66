package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortTermProfileName(t *testing.T) {
	cfg := Config{ProfileName: "default", ShortTermSuffix: "short-term"}

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "session token",
			req:  Request{Action: ActionSessionToken},
			want: "default-short-term",
		},
		{
			name: "assume role",
			req: Request{
				Action:          ActionAssumeRole,
				RoleARN:         "arn:aws:iam::123456789012:role/example-role",
				RoleSessionName: "mfa-user",
			},
			want: "default_123456789012-role-example-role-mfa-user_short-term",
		},
		{
			name: "assume role with path",
			req: Request{
				Action:          ActionAssumeRole,
				RoleARN:         "arn:aws:iam::123456789012:role/team/admin",
				RoleSessionName: "ops",
			},
			want: "default_123456789012-role-team-admin-ops_short-term",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.ShortTermProfileName(cfg))
		})
	}
}

func TestShortTermProfileName_CustomSuffix(t *testing.T) {
	cfg := Config{ProfileName: "work", ShortTermSuffix: "tmp"}
	assert.Equal(t, "work-tmp", Request{Action: ActionSessionToken}.ShortTermProfileName(cfg))
}

func TestRoleARNTail(t *testing.T) {
	assert.Equal(t, "123456789012-role-r", roleARNTail("arn:aws:iam::123456789012:role/r"))
	assert.Equal(t, "", roleARNTail("arn:aws:iam:"))
	assert.Equal(t, "", roleARNTail(""))
}
