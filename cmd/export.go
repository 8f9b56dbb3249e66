package cmd

import (
	"fmt"
	"time"

	"github.com/chukul/mfaws/internal"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <profile>",
	Short: "Print a stored profile as shell export statements",
	Example: `  eval $(mfaws export default-short-term)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store, err := internal.LoadCredentialStore(currentConfig().CredentialsFile)
		if err != nil {
			return err
		}

		sections := store.Sections(name, 2)
		switch {
		case len(sections) == 0:
			return errors.Wrapf(internal.ErrProfileNotFound, "profile %q", name)
		case len(sections) > 1:
			return errors.Wrapf(internal.ErrMultipleProfilesFound, "profile %q", name)
		}
		fields := sections[0]

		if _, ok := fields[internal.ExpirationField]; ok {
			if _, valid := internal.RemainingValidity(store, name, time.Now()); !valid {
				logger.Warn("Exported credentials are expired", "profile", name)
			}
		}

		for _, kv := range []struct{ env, field string }{
			{"AWS_ACCESS_KEY_ID", internal.AccessKeyField},
			{"AWS_SECRET_ACCESS_KEY", internal.SecretKeyField},
			{"AWS_SESSION_TOKEN", internal.SessionTokenField},
		} {
			if value, ok := fields[kv.field]; ok {
				fmt.Printf("export %s=%s\n", kv.env, value)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
