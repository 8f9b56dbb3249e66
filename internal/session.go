package internal

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// TokenPrompt asks the user for the current one-time code of an MFA device.
type TokenPrompt interface {
	ReadToken(ctx context.Context, device string) (string, error)
}

// TokenPromptFunc adapts a plain function to TokenPrompt.
type TokenPromptFunc func(ctx context.Context, device string) (string, error)

func (f TokenPromptFunc) ReadToken(ctx context.Context, device string) (string, error) {
	return f(ctx, device)
}

// ClientFactory builds the STS client used for one issuance.
type ClientFactory func(ctx context.Context, lt *LongTermProfile, region string) (STSAPI, error)

// Rotator refreshes a short-term profile in a credentials store.
// A Rotator owns its Store for the duration of Rotate.
type Rotator struct {
	Store     *CredentialStore
	NewClient ClientFactory // defaults to NewSTSClient
	Prompt    TokenPrompt
	Logger    *log.Logger // defaults to a discarding logger
	Now       func() time.Time
}

// Result describes the outcome of Rotate.
type Result struct {
	ProfileName string
	// Issued is false when a still valid profile was kept.
	Issued    bool
	Remaining string
	Profile   *ShortTermProfile
}

// Rotate resolves the long-term profile, reuses the cached short-term
// profile when it is still valid (unless cfg.ForceNew), and otherwise issues
// new credentials and persists them. The store file is only written after a
// successful issuance.
func (r *Rotator) Rotate(ctx context.Context, cfg Config, req Request) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger()

	lt, err := ResolveLongTermProfile(r.Store, cfg.ProfileName, cfg.MFADevice)
	if err != nil {
		return nil, err
	}
	logger.Info("Using long-term profile", "profile", lt.Name)

	name := req.ShortTermProfileName(cfg)
	if remaining, ok := RemainingValidity(r.Store, name, r.now()); ok {
		if !cfg.ForceNew {
			logger.Info("Found valid short-term profile", "profile", name, "remaining", remaining)
			return &Result{ProfileName: name, Remaining: remaining}, nil
		}
		logger.Info("Discarding existing short-term profile (--force was used)", "profile", name)
	}

	code, err := r.mfaCode(ctx, cfg, lt)
	if err != nil {
		return nil, err
	}

	client, err := r.newClient(ctx, lt, cfg.Region)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "creating STS client"), ErrIssuanceFailed)
	}

	logger.Debug("Requesting temporary credentials",
		"action", req.Action,
		"duration", req.duration(cfg),
		"device", lt.MFADevice,
	)
	stp, err := req.Issue(ctx, client, lt, code, cfg)
	if err != nil {
		return nil, err
	}

	if err := r.Store.SetShortTermProfile(name, stp); err != nil {
		return nil, err
	}
	if err := r.Store.Persist(); err != nil {
		return nil, err
	}
	logger.Info("Added short-term credentials", "profile", name, "expiration", FormatExpiration(stp.Expiration))

	return &Result{
		ProfileName: name,
		Issued:      true,
		Remaining:   FormatDuration(stp.Expiration.Sub(r.now())),
		Profile:     stp,
	}, nil
}

func (r *Rotator) mfaCode(ctx context.Context, cfg Config, lt *LongTermProfile) (string, error) {
	code := strings.TrimSpace(cfg.OTP)
	if code == "" && r.Prompt != nil {
		var err error
		if code, err = r.Prompt.ReadToken(ctx, lt.MFADevice); err != nil {
			return "", errors.Wrap(err, "read MFA code")
		}
		code = strings.TrimSpace(code)
	}
	if code == "" {
		return "", errors.WithHint(
			errors.Wrapf(ErrConfigValidation, "MFA code is required for device %s", lt.MFADevice),
			"Pass --otp or run the command in an interactive terminal")
	}
	return code, nil
}

func (r *Rotator) newClient(ctx context.Context, lt *LongTermProfile, region string) (STSAPI, error) {
	if r.NewClient != nil {
		return r.NewClient(ctx, lt, region)
	}
	return NewSTSClient(ctx, lt, region)
}

func (r *Rotator) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.New(io.Discard)
}

func (r *Rotator) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
