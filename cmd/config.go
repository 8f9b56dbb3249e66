package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/chukul/mfaws/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	flagProfile         = "profile"
	flagDevice          = "device"
	flagDuration        = "duration"
	flagSuffix          = "short-term-suffix"
	flagCredentialsFile = "credentials-file"
	flagRegion          = "region"
	flagLogLevel        = "log-level"
)

// Environment variables consulted when the flag is not given.
var envBindings = map[string]string{
	flagProfile:         "AWS_PROFILE",
	flagDevice:          "MFA_DEVICE",
	flagDuration:        "MFA_STS_DURATION",
	flagCredentialsFile: "AWS_SHARED_CREDENTIALS_FILE",
	flagRegion:          "MFAWS_REGION",
	flagLogLevel:        "MFAWS_LOG_LEVEL",
}

var (
	v      = viper.New()
	logger *log.Logger
)

func init() {
	registerPersistentFlags(rootCmd.PersistentFlags())
}

func registerPersistentFlags(pf *pflag.FlagSet) {
	pf.String(flagProfile, internal.DefaultProfileName, "The long-term AWS credentials profile to use")
	pf.String(flagDevice, "", "The MFA device ARN. Can also be set with aws_mfa_device in the credentials file")
	pf.Int32(flagDuration, 0, "Lifetime of the temporary credentials in seconds. Defaults to 43200 (12 hours) for session tokens and 3600 (one hour) when assuming a role")
	pf.String(flagSuffix, internal.DefaultShortTermSuffix, "Suffix identifying the generated short-term profiles")
	pf.String(flagCredentialsFile, "", "Path to the AWS shared credentials file (default ~/.aws/credentials)")
	pf.String(flagRegion, internal.DefaultRegion, "AWS region of the STS endpoint")
	pf.String(flagLogLevel, "info", "Log level: debug, info, warn or error")
}

// loadConfig binds flags and environment variables and sets up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}

	var err error
	logger, err = internal.NewLogger(os.Stderr, v.GetString(flagLogLevel))
	return err
}

func currentConfig() internal.Config {
	path := v.GetString(flagCredentialsFile)
	if path == "" {
		path = internal.DefaultCredentialsPath()
	}
	return internal.Config{
		ProfileName:     v.GetString(flagProfile),
		MFADevice:       v.GetString(flagDevice),
		Duration:        v.GetInt32(flagDuration),
		ShortTermSuffix: v.GetString(flagSuffix),
		CredentialsFile: path,
		Region:          v.GetString(flagRegion),
	}
}
