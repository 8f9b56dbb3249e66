package internal

import "github.com/cockroachdb/errors"

// ResolveLongTermProfile extracts the durable identity stored under name.
// mfaOverride, when set, replaces the aws_mfa_device stored in the section.
func ResolveLongTermProfile(store *CredentialStore, name, mfaOverride string) (*LongTermProfile, error) {
	// Two matches are enough to prove the profile is ambiguous.
	sections := store.Sections(name, 2)

	switch len(sections) {
	case 0:
		return nil, errors.WithHintf(profileError(ErrProfileNotFound, name),
			"Add it with: aws configure --profile %s", name)
	case 1:
	default:
		return nil, errors.WithHintf(profileError(ErrMultipleProfilesFound, name),
			"Remove the duplicate [%s] sections from %s", name, store.Path())
	}

	section := sections[0]
	lt := &LongTermProfile{Name: name}

	var ok bool
	if lt.AccessKey, ok = section[AccessKeyField]; !ok {
		return nil, profileError(ErrNoAccessKey, name)
	}
	if lt.SecretKey, ok = section[SecretKeyField]; !ok {
		return nil, profileError(ErrNoSecretKey, name)
	}

	lt.MFADevice = mfaOverride
	if lt.MFADevice == "" {
		lt.MFADevice = section[MFADeviceField]
	}
	if lt.MFADevice == "" {
		return nil, errors.WithHintf(profileError(ErrNoMFADevice, name),
			"Pass --device, set MFA_DEVICE, or add %s to the [%s] section", MFADeviceField, name)
	}

	return lt, nil
}
