package x11

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal connection failures. Each one ends the session before any window
// exists; there is no retry.
var (
	ErrStream               = errors.New("socket errors, pipe errors or other stream errors")
	ErrExtensionUnsupported = errors.New("extension not supported")
	ErrMemory               = errors.New("memory not available")
	ErrRequestLength        = errors.New("exceeding request length that server accepts")
	ErrDisplayParse         = errors.New("error during parsing display string")
	ErrNoScreen             = errors.New("the server does not have a screen matching the display")
)

// Setup and lifetime errors.
var (
	ErrNoRootVisual = errors.New("there is no root visual type")
	ErrNoPictFormat = errors.New("no picture format for the root visual")
	ErrClosed       = errors.New("connection closed")
	ErrInUse        = errors.New("resource still in use")
)

var connectionErrors = []error{
	ErrStream,
	ErrExtensionUnsupported,
	ErrMemory,
	ErrRequestLength,
	ErrDisplayParse,
	ErrNoScreen,
}

// classify tags a dial error with one of the connection failure kinds.
// Errors that already carry a kind are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range connectionErrors {
		if errors.Is(err, kind) {
			return err
		}
	}

	msg := strings.ToLower(err.Error())
	var kind error
	switch {
	case strings.Contains(msg, "display string"), strings.Contains(msg, "empty display"):
		kind = ErrDisplayParse
	case strings.Contains(msg, "extension"):
		kind = ErrExtensionUnsupported
	// xgb's dial path never reports memory or request length failures with
	// these words; the cases keep every connection error kind reachable for
	// wrapped transports. ErrRequestLength is also raised by validateSetup.
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "cannot allocate memory"):
		kind = ErrMemory
	case strings.Contains(msg, "request length"), strings.Contains(msg, "request too large"):
		kind = ErrRequestLength
	case strings.Contains(msg, "screen"):
		kind = ErrNoScreen
	default:
		kind = ErrStream
	}
	return fmt.Errorf("%w: %w", kind, err)
}
