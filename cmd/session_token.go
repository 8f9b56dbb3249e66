package cmd

import (
	"github.com/chukul/mfaws/internal"
	"github.com/spf13/cobra"
)

var sessionTokenFlags issuanceFlags

var sessionTokenCmd = &cobra.Command{
	Use:   "session-token",
	Short: "Temporary credentials for an AWS IAM user",
	Long: `Get an MFA session token for the long-term profile and store it as
<profile>-<suffix>. The session is valid for up to 12 hours by default.`,
	Example: `  # Get a 12 hour session for the default profile
  mfaws session-token

  # Shorter session for another profile
  mfaws session-token --profile work --duration 3600`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRotate(cmd, sessionTokenFlags, internal.Request{Action: internal.ActionSessionToken})
	},
}

func init() {
	sessionTokenFlags.register(sessionTokenCmd)
	rootCmd.AddCommand(sessionTokenCmd)
}
