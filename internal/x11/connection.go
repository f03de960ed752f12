package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Connection manages the session with the X server. Windows and surfaces
// derived from it hold a non-owning reference and must be released before
// the connection is closed.
type Connection struct {
	wire   Transport
	setup  *xproto.SetupInfo
	logger *slog.Logger

	live   int  // windows and surfaces not yet released
	lost   bool // the server went away
	closed bool
}

// Open connects to the X server named by display, or to $DISPLAY when
// display is empty. Failures are fatal and carry one of the connection error
// kinds (ErrStream, ErrDisplayParse, ...).
func Open(display string, logger *slog.Logger) (*Connection, error) {
	w, err := dial(display)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", displayName(display), classify(err))
	}

	conn, err := newConnection(w, logger)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("connect to %s: %w", displayName(display), err)
	}

	logger.Info("connected to display server",
		"display", displayName(display),
		"screens", len(conn.setup.Roots),
		"vendor", conn.setup.Vendor)
	return conn, nil
}

// NewConnection wraps an already established transport. Open is the usual
// entry point; this exists for callers that bring their own Transport.
func NewConnection(t Transport, logger *slog.Logger) (*Connection, error) {
	return newConnection(t, logger)
}

func newConnection(w Transport, logger *slog.Logger) (*Connection, error) {
	setup := w.Setup()
	if err := validateSetup(setup, w.DefaultScreen()); err != nil {
		return nil, err
	}
	return &Connection{
		wire:   w,
		setup:  setup,
		logger: logger,
	}, nil
}

func displayName(display string) string {
	if display == "" {
		return "default display"
	}
	return fmt.Sprintf("display %q", display)
}

// Setup returns the setup reply received when the connection was made.
func (c *Connection) Setup() *xproto.SetupInfo {
	return c.setup
}

// Flush forces queued requests to the server and waits for it to process
// them. It is a full round trip, so an error caused by an earlier request is
// delivered before the next event is read.
func (c *Connection) Flush() {
	if !c.usable() {
		return
	}
	c.wire.Sync()
}

// WaitForEvent blocks until the server delivers an event or an asynchronous
// protocol error. A nil event together with a nil error means the connection
// is gone; no request is sent after that.
func (c *Connection) WaitForEvent() (xgb.Event, xgb.Error) {
	if !c.usable() {
		return nil, nil
	}
	ev, xerr := c.wire.WaitForEvent()
	if ev == nil && xerr == nil {
		c.lost = true
		c.logger.Debug("display server connection lost")
	}
	return ev, xerr
}

// Keysym returns the keysym in the given column of the server's keyboard
// mapping for code.
func (c *Connection) Keysym(code xproto.Keycode, column byte) xproto.Keysym {
	if !c.usable() {
		return 0
	}
	return c.wire.Keysym(code, column)
}

// Close releases the session. It fails while windows or surfaces derived
// from the connection are still alive. Closing twice is a no-op.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	if c.live > 0 {
		return fmt.Errorf("close connection: %w: %d resources alive", ErrInUse, c.live)
	}
	c.closed = true
	c.wire.Close()
	c.logger.Debug("display server connection closed")
	return nil
}

// usable reports whether requests may still be issued.
func (c *Connection) usable() bool {
	return !c.closed && !c.lost
}

func (c *Connection) acquire() {
	c.live++
}

func (c *Connection) release() {
	if c.live > 0 {
		c.live--
	}
}
