package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/chukul/mfaws/internal"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listJSON bool

type profileStatus struct {
	Profile    string `json:"profile"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Expiration string `json:"expiration,omitempty"`
	Remaining  string `json:"remaining,omitempty"`
	RoleArn    string `json:"assumed_role_arn,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles in the credentials file with their status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()
		store, err := internal.LoadCredentialStore(cfg.CredentialsFile)
		if err != nil {
			return err
		}

		statuses := profileStatuses(store, cfg.ShortTermSuffix, time.Now())
		if listJSON {
			out, err := json.MarshalIndent(statuses, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if len(statuses) == 0 {
			fmt.Println("📭 No profiles found.")
			return nil
		}

		header := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%-50s %-12s %-20s %-12s %s\n",
			header("PROFILE"), header("KIND"), header("EXPIRATION"), header("REMAINING"), header("STATUS"))
		fmt.Println(strings.Repeat("-", 110))

		for _, s := range statuses {
			statusColor := color.New(color.FgGreen).SprintFunc()
			switch s.Status {
			case "EXPIRED":
				statusColor = color.New(color.FgYellow).SprintFunc()
			case "DUPLICATE":
				statusColor = color.New(color.FgRed).SprintFunc()
			}
			fmt.Printf("%-50s %-12s %-20s %-12s %s\n",
				truncateText(s.Profile, 48), s.Kind, s.Expiration, s.Remaining, statusColor(s.Status))
		}
		return nil
	},
}

func profileStatuses(store *internal.CredentialStore, suffix string, now time.Time) []profileStatus {
	statuses := []profileStatus{}
	for _, name := range store.SectionNames() {
		s := profileStatus{Profile: name, Kind: "long-term", Status: "ACTIVE"}
		if strings.HasSuffix(name, suffix) {
			s.Kind = "short-term"
		}

		sections := store.Sections(name, 2)
		if len(sections) > 1 {
			s.Status = "DUPLICATE"
			statuses = append(statuses, s)
			continue
		}
		fields := sections[0]
		s.RoleArn = fields[internal.AssumedRoleARNField]

		if raw, ok := fields[internal.ExpirationField]; ok {
			if exp, err := internal.ParseExpiration(raw); err == nil {
				s.Expiration = exp.Local().Format(internal.DisplayTimeFormat)
			}
			if remaining, ok := internal.RemainingValidity(store, name, now); ok {
				s.Remaining = remaining
			} else {
				s.Status = "EXPIRED"
			}
		}
		statuses = append(statuses, s)
	}
	return statuses
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output results in JSON format for automation")
	rootCmd.AddCommand(listCmd)
}
