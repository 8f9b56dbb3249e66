package internal

import "time"

// Keys used in the shared credentials file.
const (
	AccessKeyField      = "aws_access_key_id"
	SecretKeyField      = "aws_secret_access_key"
	MFADeviceField      = "aws_mfa_device"
	SessionTokenField   = "aws_session_token"
	AssumedRoleARNField = "assumed_role_arn"
	AssumedRoleIDField  = "assumed_role_id"
	ExpirationField     = "expiration"
)

// LongTermProfile is the durable IAM identity used to mint short-term credentials.
type LongTermProfile struct {
	Name      string
	AccessKey string
	SecretKey string
	MFADevice string
}

// ShortTermProfile holds temporary credentials returned by STS.
// Empty AssumedRoleARN / AssumedRoleID mean the issuer did not set them
// and they are never written to the store.
type ShortTermProfile struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Expiration   time.Time

	AssumedRoleARN string
	AssumedRoleID  string
}
