package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
)

// Geometry describes a window to create. A zero Parent means the root window
// of the root screen.
type Geometry struct {
	Parent xproto.Window
	X      int
	Y      int
	Width  int
	Height int
	Border int
}

// Window owns a server-side window. Requests are queued on the connection
// and never report success synchronously; protocol errors arrive later
// through the event loop.
type Window struct {
	conn      *Connection
	id        xproto.Window
	surfaces  int
	destroyed bool
}

// NewWindow generates a window id and issues the create request. Position
// is clamped to >= 0, size to >= 1x1 and border width to >= 0.
func NewWindow(conn *Connection, geom Geometry) (*Window, error) {
	if !conn.usable() {
		return nil, fmt.Errorf("create window: %w", ErrClosed)
	}

	parent := geom.Parent
	if parent == 0 {
		screen, err := RootScreen(conn.setup)
		if err != nil {
			return nil, fmt.Errorf("create window: %w", err)
		}
		parent = screen.Root
	}

	id, err := conn.wire.NewWindowID()
	if err != nil {
		return nil, fmt.Errorf("create window: generate id: %w", err)
	}

	x := clamp(geom.X, 0, math.MaxInt16)
	y := clamp(geom.Y, 0, math.MaxInt16)
	width := clamp(geom.Width, 1, math.MaxUint16)
	height := clamp(geom.Height, 1, math.MaxUint16)
	border := clamp(geom.Border, 0, math.MaxUint16)

	conn.wire.CreateWindow(id, parent, int16(x), int16(y), uint16(width), uint16(height), uint16(border))
	conn.acquire()

	conn.logger.Debug("window created",
		"window", fmt.Sprintf("%#x", id),
		"parent", fmt.Sprintf("%#x", parent),
		"geometry", fmt.Sprintf("%dx%d+%d+%d", width, height, x, y),
		"border", border)

	return &Window{conn: conn, id: id}, nil
}

// ID returns the server-assigned window identity.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Map asks the server to make the window visible.
func (w *Window) Map() {
	if w.live() {
		w.conn.wire.MapWindow(w.id)
	}
}

// Unmap hides the window.
func (w *Window) Unmap() {
	if w.live() {
		w.conn.wire.UnmapWindow(w.id)
	}
}

// Configure changes geometry or stacking. Values are matched positionally
// with the bits set in mask, lowest bit first.
func (w *Window) Configure(mask uint16, values ...uint32) {
	if w.live() {
		w.conn.wire.ConfigureWindow(w.id, mask, values)
	}
}

// SetAttributes changes window attributes such as the event mask. Values
// follow the same positional rule as Configure.
func (w *Window) SetAttributes(mask uint32, values ...uint32) {
	if w.live() {
		w.conn.wire.ChangeWindowAttributes(w.id, mask, values)
	}
}

// SetName labels the window for window managers and pagers.
func (w *Window) SetName(name, class string) error {
	if !w.live() {
		return fmt.Errorf("set window name: %w", ErrClosed)
	}
	if err := w.conn.wire.SetName(w.id, name, class); err != nil {
		return fmt.Errorf("set window name: %w", err)
	}
	return nil
}

// Destroy issues the destroy request and releases the window's hold on the
// connection. It fails while a surface is still bound to the window. Once
// the connection is gone the server has already freed the window, so no
// request is sent.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	if w.surfaces > 0 {
		return fmt.Errorf("destroy window %#x: %w: %d surfaces bound", w.id, ErrInUse, w.surfaces)
	}
	if w.conn.usable() {
		w.conn.wire.DestroyWindow(w.id)
	}
	w.destroyed = true
	w.conn.release()
	w.conn.logger.Debug("window destroyed", "window", fmt.Sprintf("%#x", w.id))
	return nil
}

func (w *Window) live() bool {
	return !w.destroyed && w.conn.usable()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
