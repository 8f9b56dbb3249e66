package internal

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
)

// Action selects how temporary credentials are issued.
type Action int

const (
	ActionSessionToken Action = iota
	ActionAssumeRole
)

func (a Action) String() string {
	switch a {
	case ActionAssumeRole:
		return "assume-role"
	default:
		return "session-token"
	}
}

// Default durations, in seconds.
const (
	AssumeRoleDefaultDuration   int32 = 3600
	SessionTokenDefaultDuration int32 = 43200
)

// Request describes one issuance. RoleARN and RoleSessionName are only
// used by ActionAssumeRole.
type Request struct {
	Action          Action
	RoleARN         string
	RoleSessionName string
}

// STSAPI is the subset of the STS client used for issuance.
type STSAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
	GetSessionToken(ctx context.Context, params *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error)
}

// NewSTSClient builds an STS client signed with the long-term keys.
func NewSTSClient(ctx context.Context, lt *LongTermProfile, region string) (STSAPI, error) {
	if region == "" {
		region = DefaultRegion
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(lt.AccessKey, lt.SecretKey, "")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "load AWS config")
	}
	return sts.NewFromConfig(cfg), nil
}

// Validate checks the action specific parameters.
func (r Request) Validate() error {
	if r.Action != ActionAssumeRole {
		return nil
	}
	if r.RoleARN == "" {
		return errors.WithHint(
			errors.Wrap(ErrConfigValidation, "role ARN is required"),
			"Pass --role-arn arn:aws:iam::<account-id>:role/<role-name>")
	}
	if _, err := arn.Parse(r.RoleARN); err != nil {
		return errors.Wrapf(ErrConfigValidation, "invalid role ARN %q: %v", r.RoleARN, err)
	}
	if r.RoleSessionName == "" {
		return errors.Wrap(ErrConfigValidation, "role session name is required")
	}
	return nil
}

// DefaultDuration is used when no explicit duration is configured.
func (r Request) DefaultDuration() int32 {
	if r.Action == ActionAssumeRole {
		return AssumeRoleDefaultDuration
	}
	return SessionTokenDefaultDuration
}

func (r Request) duration(cfg Config) int32 {
	if cfg.Duration > 0 {
		return cfg.Duration
	}
	return r.DefaultDuration()
}

// Issue exchanges the long-term identity and an MFA code for temporary
// credentials.
func (r Request) Issue(ctx context.Context, client STSAPI, lt *LongTermProfile, mfaCode string, cfg Config) (*ShortTermProfile, error) {
	switch r.Action {
	case ActionAssumeRole:
		out, err := client.AssumeRole(ctx, &sts.AssumeRoleInput{
			RoleArn:         aws.String(r.RoleARN),
			RoleSessionName: aws.String(r.RoleSessionName),
			SerialNumber:    aws.String(lt.MFADevice),
			TokenCode:       aws.String(mfaCode),
			DurationSeconds: aws.Int32(r.duration(cfg)),
		})
		if err != nil {
			return nil, extractSTSError(err)
		}
		stp, err := shortTermProfileFrom(out.Credentials)
		if err != nil {
			return nil, err
		}
		// Keep the ARN as requested; STS may echo it back formatted differently.
		stp.AssumedRoleARN = r.RoleARN
		if out.AssumedRoleUser != nil {
			stp.AssumedRoleID = aws.ToString(out.AssumedRoleUser.AssumedRoleId)
		}
		return stp, nil

	default:
		out, err := client.GetSessionToken(ctx, &sts.GetSessionTokenInput{
			SerialNumber:    aws.String(lt.MFADevice),
			TokenCode:       aws.String(mfaCode),
			DurationSeconds: aws.Int32(r.duration(cfg)),
		})
		if err != nil {
			return nil, extractSTSError(err)
		}
		return shortTermProfileFrom(out.Credentials)
	}
}

func shortTermProfileFrom(creds *types.Credentials) (*ShortTermProfile, error) {
	if creds == nil {
		return nil, errors.Mark(errors.New("STS returned no credentials"), ErrIssuanceFailed)
	}
	return &ShortTermProfile{
		AccessKey:    aws.ToString(creds.AccessKeyId),
		SecretKey:    aws.ToString(creds.SecretAccessKey),
		SessionToken: aws.ToString(creds.SessionToken),
		Expiration:   aws.ToTime(creds.Expiration),
	}, nil
}

// extractSTSError reduces an STS failure to the service's own message when
// one is available.
func extractSTSError(err error) error {
	msg := fmt.Sprintf("failed to get credentials: %v", err)
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		msg = apiErr.ErrorMessage()
	}
	return errors.Mark(errors.New(msg), ErrIssuanceFailed)
}
