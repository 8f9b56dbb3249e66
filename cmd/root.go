package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chukul/mfaws/internal"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func printLogo() {
	ascii := []string{
		`  ███╗   ███╗███████╗ █████╗ ██╗    ██╗███████╗`,
		`  ████╗ ████║██╔════╝██╔══██╗██║    ██║██╔════╝`,
		`  ██╔████╔██║█████╗  ███████║██║ █╗ ██║███████╗`,
		`  ██║╚██╔╝██║██╔══╝  ██╔══██║██║███╗██║╚════██║`,
		`  ██║ ╚═╝ ██║██║     ██║  ██║╚███╔███╔╝███████║`,
		`  ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝ ╚══╝╚══╝ ╚══════╝`,
	}

	// Gradient Blue (0,176,255) -> Purple (170,0,255) -> Pink (255,0,128)
	fmt.Fprintln(os.Stderr)
	for _, line := range ascii {
		runes := []rune(line)
		for i, char := range runes {
			ratio := float64(i) / float64(len(runes))

			var r, g, b int
			if ratio < 0.5 {
				subRatio := ratio * 2
				r = int(170 * subRatio)
				g = int(176 * (1 - subRatio))
				b = 255
			} else {
				subRatio := (ratio - 0.5) * 2
				r = int(170*(1-subRatio) + 255*subRatio)
				g = 0
				b = int(255*(1-subRatio) + 128*subRatio)
			}

			fmt.Fprintf(os.Stderr, "\x1b[38;2;%d;%d;%dm%c\x1b[0m", r, g, b, char)
		}
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprintln(os.Stderr, "\x1b[1m  Short-term AWS credentials from your MFA-protected long-term keys\x1b[0m")
	fmt.Fprintln(os.Stderr)
}

var rootCmd = &cobra.Command{
	Use:   "mfaws",
	Short: "mfaws rotates MFA-backed short-term AWS credentials",
	Long: `mfaws reads a long-term profile from your AWS shared credentials file, asks for
an MFA code and stores temporary STS credentials in a generated short-term profile.
Still-valid short-term profiles are reused unless --force is given.`,
	Version:           internal.Version(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the CLI
func Execute() {
	if len(os.Args) <= 1 || (len(os.Args) > 1 && os.Args[1] == "help") {
		printLogo()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr)
	for _, hint := range hints {
		fmt.Fprintf(os.Stderr, "💡 %s\n", hint)
	}
}
