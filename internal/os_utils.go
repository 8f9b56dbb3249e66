package internal

import (
	"os"
	"path/filepath"
)

// DefaultCredentialsPath returns ~/.aws/credentials.
func DefaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".aws", "credentials")
}
