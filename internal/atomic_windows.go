//go:build windows

package internal

import "os"

// renameio does not support Windows; fall back to a plain write of the
// fully serialised buffer.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
