package cmd

import (
	"fmt"

	"github.com/chukul/mfaws/internal"
	"github.com/spf13/cobra"
)

// issuanceFlags are shared by assume-role and session-token.
type issuanceFlags struct {
	otp   string
	force bool
}

func (f *issuanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.otp, "otp", "", "The one-time password from your MFA device")
	cmd.Flags().BoolVar(&f.force, "force", false, "Force the creation of a new short-term profile even if one is still valid")
}

func runRotate(cmd *cobra.Command, flags issuanceFlags, req internal.Request) error {
	cfg := currentConfig()
	cfg.OTP = flags.otp
	cfg.ForceNew = flags.force
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := internal.LoadCredentialStore(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	rotator := &internal.Rotator{
		Store:     store,
		NewClient: newClient,
		Prompt:    internal.TokenPromptFunc(readMFACode),
		Logger:    logger,
	}
	res, err := rotator.Rotate(cmd.Context(), cfg, req)
	if err != nil {
		return err
	}

	if !res.Issued {
		fmt.Printf("✅ Short-term profile '%s' is still valid for %s\n", res.ProfileName, res.Remaining)
		fmt.Println("   Use --force to replace it.")
		return nil
	}

	fmt.Printf("✅ Short-term credentials stored as '%s'\n", res.ProfileName)
	fmt.Printf("   Expires: %s (%s remaining)\n",
		res.Profile.Expiration.Local().Format(internal.DisplayTimeFormat), res.Remaining)
	if res.Profile.AssumedRoleARN != "" {
		fmt.Printf("   Role:    %s\n", res.Profile.AssumedRoleARN)
	}
	fmt.Printf("\n💡 Use it with:\n   export AWS_PROFILE=%s\n", res.ProfileName)
	return nil
}
