package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/chukul/mfaws/internal"
	"github.com/chukul/mfaws/internal/ui"
	"golang.org/x/term"
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// readMFACode prompts for the one-time code. Interactive terminals get a
// masked input; otherwise a single line is read from stdin.
func readMFACode(ctx context.Context, device string) (string, error) {
	if stdinIsTerminal() {
		return ui.ReadMFACode(device)
	}

	fmt.Fprintln(os.Stderr, "Enter MFA code:")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// spinningClient shows a spinner while STS calls are in flight.
type spinningClient struct {
	internal.STSAPI
}

func (c spinningClient) AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error) {
	return ui.Spin("Assuming role...", func() (*sts.AssumeRoleOutput, error) {
		return c.STSAPI.AssumeRole(ctx, params, optFns...)
	})
}

func (c spinningClient) GetSessionToken(ctx context.Context, params *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error) {
	return ui.Spin("Getting session token...", func() (*sts.GetSessionTokenOutput, error) {
		return c.STSAPI.GetSessionToken(ctx, params, optFns...)
	})
}

func newClient(ctx context.Context, lt *internal.LongTermProfile, region string) (internal.STSAPI, error) {
	client, err := internal.NewSTSClient(ctx, lt, region)
	if err != nil {
		return nil, err
	}
	if stderrIsTerminal() {
		return spinningClient{client}, nil
	}
	return client, nil
}

func truncateText(text string, max int) string {
	if len(text) > max {
		return text[:max-3] + "..."
	}
	return text
}
