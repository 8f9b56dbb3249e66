package cmd

import (
	"github.com/chukul/mfaws/internal"
	"github.com/spf13/cobra"
)

var (
	assumeRoleFlags issuanceFlags
	roleArn         string
	roleSessionName string
)

var assumeRoleCmd = &cobra.Command{
	Use:   "assume-role",
	Short: "Temporary credentials for an assumed AWS IAM Role",
	Long: `Assume an IAM role with MFA using the long-term profile and store the temporary
credentials as <profile>_<role>-<session-name>_<suffix>.`,
	Example: `  # Assume a role, prompting for the MFA code
  mfaws assume-role --profile default --role-arn arn:aws:iam::123456789012:role/Admin

  # Non-interactive, with an explicit device and code
  mfaws assume-role --role-arn arn:aws:iam::123456789012:role/Admin \
    --device arn:aws:iam::123456789012:mfa/user --otp 123456`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRotate(cmd, assumeRoleFlags, internal.Request{
			Action:          internal.ActionAssumeRole,
			RoleARN:         roleArn,
			RoleSessionName: roleSessionName,
		})
	},
}

func init() {
	assumeRoleCmd.Flags().StringVar(&roleArn, "role-arn", "", "The ARN of the AWS IAM Role you want to assume")
	assumeRoleCmd.Flags().StringVar(&roleSessionName, "role-session-name", internal.DefaultRoleSessionName, "Custom friendly session name when assuming a role")
	if err := assumeRoleCmd.MarkFlagRequired("role-arn"); err != nil {
		panic(err)
	}
	assumeRoleFlags.register(assumeRoleCmd)
	rootCmd.AddCommand(assumeRoleCmd)
}
