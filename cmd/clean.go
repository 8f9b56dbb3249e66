package cmd

import (
	"fmt"
	"strings"

	"github.com/chukul/mfaws/internal"
	"github.com/chukul/mfaws/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var cleanYes bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all short-term profiles from your credentials file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()
		store, err := internal.LoadCredentialStore(cfg.CredentialsFile)
		if err != nil {
			return err
		}

		profiles := shortTermProfiles(store, cfg.ShortTermSuffix)
		if len(profiles) == 0 {
			fmt.Println("📭 No short-term profiles found.")
			return nil
		}

		fmt.Println("The following short-term profiles will be deleted:")
		for _, p := range profiles {
			fmt.Printf("   • %s\n", p)
		}

		if !cleanYes {
			if !stdinIsTerminal() {
				fmt.Println("❌ Refusing to delete without confirmation. Re-run with --yes.")
				return nil
			}
			ok, err := ui.Confirm("Confirm deletion?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("❌ Operation cancelled.")
				return nil
			}
		}

		for _, p := range profiles {
			store.DeleteSection(p)
		}
		if err := store.Persist(); err != nil {
			return err
		}
		logger.Debug("Deleted short-term profiles", "count", len(profiles), "file", store.Path())
		fmt.Printf("✅ Removed %d short-term profile(s).\n", len(profiles))
		return nil
	},
}

// shortTermProfiles returns the generated profiles, i.e. sections ending
// with suffix.
func shortTermProfiles(store *internal.CredentialStore, suffix string) []string {
	return lo.Filter(store.SectionNames(), func(name string, _ int) bool {
		return strings.HasSuffix(name, suffix)
	})
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Delete without asking for confirmation")
	rootCmd.AddCommand(cleanCmd)
}
