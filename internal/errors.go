package internal

import "github.com/cockroachdb/errors"

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrMultipleProfilesFound = errors.New("multiple profiles found")
	ErrNoAccessKey           = errors.New("no access key found")
	ErrNoSecretKey           = errors.New("no secret key found")
	ErrNoMFADevice           = errors.New("no MFA device found")

	ErrIssuanceFailed = errors.New("failed to get credentials")

	ErrStoreIO       = errors.New("credentials file I/O error")
	ErrStoreNotFound = errors.New("credentials file not found")
	ErrStoreParse    = errors.New("credentials file malformed")

	ErrConfigValidation = errors.New("invalid configuration")
)

// profileError ties one of the resolution sentinels to the profile it was
// raised for, e.g. `profile "dev": no secret key found`.
func profileError(sentinel error, profile string) error {
	return errors.Wrapf(sentinel, "profile %q", profile)
}
