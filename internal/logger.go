package internal

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// NewLogger returns a logger writing to w at the given level
// (debug, info, warn, error).
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, errors.Wrapf(ErrConfigValidation, "invalid log level %q", level)
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "mfaws",
	}), nil
}
