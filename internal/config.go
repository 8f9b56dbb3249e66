package internal

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	DefaultProfileName     = "default"
	DefaultShortTermSuffix = "short-term"
	DefaultRoleSessionName = "mfa-user"
	DefaultRegion          = "us-east-1"
)

// Config carries the settings shared by every issuance command.
type Config struct {
	ProfileName     string
	MFADevice       string // overrides aws_mfa_device when set
	Duration        int32  // seconds; 0 selects the action default
	ShortTermSuffix string
	ForceNew        bool
	CredentialsFile string
	Region          string
	OTP             string // one-time code; skips the interactive prompt
}

// Validate rejects settings that would make derived profile names collide
// with the long-term profile.
func (c Config) Validate() error {
	if c.ProfileName == "" {
		return errors.Wrap(ErrConfigValidation, "profile name is required")
	}
	if c.ShortTermSuffix == "" {
		return errors.Wrap(ErrConfigValidation, "short-term suffix is required")
	}
	if strings.HasSuffix(c.ProfileName, c.ShortTermSuffix) {
		return errors.WithHintf(
			errors.Wrapf(ErrConfigValidation, "profile name %q cannot end with the short-term suffix %q", c.ProfileName, c.ShortTermSuffix),
			"Pass the long-term profile with --profile, not the generated %q profile", c.ProfileName)
	}
	if c.Duration < 0 {
		return errors.Wrapf(ErrConfigValidation, "duration must be positive, got %d", c.Duration)
	}
	return nil
}
