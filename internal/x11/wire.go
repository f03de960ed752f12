package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// longestRequest is the size, in 4-byte units, of the largest request
// termwin issues (ConfigureWindow with every value present).
const longestRequest = 3 + 7

// Transport is the request/event surface of a display server session. The
// production implementation talks to the server through xgb; tests swap in a
// recorder.
type Transport interface {
	Setup() *xproto.SetupInfo
	DefaultScreen() int

	NewWindowID() (xproto.Window, error)
	CreateWindow(wid, parent xproto.Window, x, y int16, width, height, border uint16)
	DestroyWindow(wid xproto.Window)
	MapWindow(wid xproto.Window)
	UnmapWindow(wid xproto.Window)
	ConfigureWindow(wid xproto.Window, mask uint16, values []uint32)
	ChangeWindowAttributes(wid xproto.Window, mask uint32, values []uint32)
	SetName(wid xproto.Window, name, class string) error

	PictFormats() (*render.QueryPictFormatsReply, error)
	CreatePicture(wid xproto.Window, format render.Pictformat) (render.Picture, error)
	FreePicture(pid render.Picture)

	Keysym(code xproto.Keycode, column byte) xproto.Keysym

	WaitForEvent() (xgb.Event, xgb.Error)
	// Sync blocks until the server has handled every queued request.
	Sync()
	Close()
}

// dial opens the production transport. Replaced in tests.
var dial = dialXgb

// xgbWire implements Transport on top of an xgbutil session.
type xgbWire struct {
	xu *xgbutil.XUtil
}

// dialXgb connects to display (or $DISPLAY when empty) and prepares the
// extensions termwin relies on.
func dialXgb(display string) (Transport, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	// xgbutil indexes the screen list with the display's screen number, so
	// the setup has to be checked before handing the connection over.
	if err := validateSetup(xproto.Setup(conn), conn.DefaultScreen); err != nil {
		conn.Close()
		return nil, err
	}

	if err := render.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: RENDER: %w", ErrExtensionUnsupported, err)
	}

	xu, err := xgbutil.NewConnXgb(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Loads the keyboard and modifier mappings used by Keysym.
	keybind.Initialize(xu)

	return &xgbWire{xu: xu}, nil
}

// validateSetup rejects setups termwin cannot work with.
func validateSetup(setup *xproto.SetupInfo, screen int) error {
	if screen < 0 || screen >= len(setup.Roots) {
		return fmt.Errorf("%w: screen %d of %d", ErrNoScreen, screen, len(setup.Roots))
	}
	if int(setup.MaximumRequestLength) < longestRequest {
		return fmt.Errorf("%w: server accepts %d units, need %d",
			ErrRequestLength, setup.MaximumRequestLength, longestRequest)
	}
	return nil
}

func (w *xgbWire) Setup() *xproto.SetupInfo {
	return w.xu.Setup()
}

func (w *xgbWire) DefaultScreen() int {
	return w.xu.Conn().DefaultScreen
}

func (w *xgbWire) NewWindowID() (xproto.Window, error) {
	win, err := xwindow.Generate(w.xu)
	if err != nil {
		return 0, err
	}
	return win.Id, nil
}

func (w *xgbWire) CreateWindow(wid, parent xproto.Window, x, y int16, width, height, border uint16) {
	xproto.CreateWindow(
		w.xu.Conn(),
		0, // depth: copy from parent
		wid,
		parent,
		x, y,
		width, height,
		border,
		xproto.WindowClassInputOutput,
		0, // visual: copy from parent
		0,
		nil,
	)
}

func (w *xgbWire) DestroyWindow(wid xproto.Window) {
	xwindow.New(w.xu, wid).Destroy()
}

func (w *xgbWire) MapWindow(wid xproto.Window) {
	xwindow.New(w.xu, wid).Map()
}

func (w *xgbWire) UnmapWindow(wid xproto.Window) {
	xwindow.New(w.xu, wid).Unmap()
}

func (w *xgbWire) ConfigureWindow(wid xproto.Window, mask uint16, values []uint32) {
	xproto.ConfigureWindow(w.xu.Conn(), wid, mask, values)
}

func (w *xgbWire) ChangeWindowAttributes(wid xproto.Window, mask uint32, values []uint32) {
	xproto.ChangeWindowAttributes(w.xu.Conn(), wid, mask, values)
}

// SetName sets both the EWMH (UTF-8) and ICCCM window names plus WM_CLASS.
// Atom lookups make this a round trip.
func (w *xgbWire) SetName(wid xproto.Window, name, class string) error {
	if err := ewmh.WmNameSet(w.xu, wid, name); err != nil {
		return fmt.Errorf("_NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(w.xu, wid, name); err != nil {
		return fmt.Errorf("WM_NAME: %w", err)
	}
	if err := icccm.WmClassSet(w.xu, wid, &icccm.WmClass{Instance: class, Class: class}); err != nil {
		return fmt.Errorf("WM_CLASS: %w", err)
	}
	return nil
}

func (w *xgbWire) PictFormats() (*render.QueryPictFormatsReply, error) {
	return render.QueryPictFormats(w.xu.Conn()).Reply()
}

func (w *xgbWire) CreatePicture(wid xproto.Window, format render.Pictformat) (render.Picture, error) {
	pid, err := render.NewPictureId(w.xu.Conn())
	if err != nil {
		return 0, err
	}
	render.CreatePicture(w.xu.Conn(), pid, xproto.Drawable(wid), format, 0, nil)
	return pid, nil
}

func (w *xgbWire) FreePicture(pid render.Picture) {
	render.FreePicture(w.xu.Conn(), pid)
}

func (w *xgbWire) Keysym(code xproto.Keycode, column byte) xproto.Keysym {
	return keybind.KeysymGet(w.xu, code, column)
}

func (w *xgbWire) WaitForEvent() (xgb.Event, xgb.Error) {
	return w.xu.Conn().WaitForEvent()
}

func (w *xgbWire) Sync() {
	w.xu.Sync()
}

func (w *xgbWire) Close() {
	w.xu.Conn().Close()
}
