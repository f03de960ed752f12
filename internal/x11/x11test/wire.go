// Package x11test provides a recording display-server transport for tests
// that need an x11.Connection without a running X server.
package x11test

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
)

// Identities used by the default setup reply.
const (
	Root   xproto.Window     = 0x100
	Visual xproto.Visualid   = 0x21
	Format render.Pictformat = 0x33
)

// Wire records every request instead of talking to a server. Events are
// replayed in order; once they run out WaitForEvent reports a lost
// connection.
type Wire struct {
	Info    *xproto.SetupInfo
	Screen  int
	Formats *render.QueryPictFormatsReply
	Events  []xgb.Event
	Calls   []string
	Syncs   int
	Closed  bool

	nextID uint32
}

// NewWire returns a transport for a single 24-bit screen whose root visual
// has a RENDER picture format.
func NewWire() *Wire {
	return &Wire{
		Info:    SetupInfo(),
		Formats: PictFormats(Visual, Format),
		nextID:  0x400000,
	}
}

func SetupInfo() *xproto.SetupInfo {
	return &xproto.SetupInfo{
		MaximumRequestLength: 65535,
		Roots: []xproto.ScreenInfo{{
			Root:       Root,
			RootVisual: Visual,
			RootDepth:  24,
			AllowedDepths: []xproto.DepthInfo{{
				Depth: 24,
				Visuals: []xproto.VisualInfo{
					{VisualId: 0x20},
					{VisualId: Visual},
				},
			}},
		}},
	}
}

func PictFormats(visual xproto.Visualid, format render.Pictformat) *render.QueryPictFormatsReply {
	return &render.QueryPictFormatsReply{
		Screens: []render.Pictscreen{{
			Depths: []render.Pictdepth{{
				Depth: 24,
				Visuals: []render.Pictvisual{
					{Visual: visual, Format: format},
				},
			}},
		}},
	}
}

// Ops returns the first word of every recorded call, in order.
func (w *Wire) Ops() []string {
	ops := make([]string, 0, len(w.Calls))
	for _, call := range w.Calls {
		op := call
		for i := range call {
			if call[i] == ' ' {
				op = call[:i]
				break
			}
		}
		ops = append(ops, op)
	}
	return ops
}

func (w *Wire) record(format string, args ...any) {
	w.Calls = append(w.Calls, fmt.Sprintf(format, args...))
}

func (w *Wire) Setup() *xproto.SetupInfo { return w.Info }
func (w *Wire) DefaultScreen() int       { return w.Screen }

func (w *Wire) NewWindowID() (xproto.Window, error) {
	w.nextID++
	return xproto.Window(w.nextID), nil
}

func (w *Wire) CreateWindow(wid, parent xproto.Window, x, y int16, width, height, border uint16) {
	w.record("create-window %#x parent=%#x %dx%d+%d+%d border=%d", wid, parent, width, height, x, y, border)
}

func (w *Wire) DestroyWindow(wid xproto.Window) { w.record("destroy-window %#x", wid) }
func (w *Wire) MapWindow(wid xproto.Window)     { w.record("map-window %#x", wid) }
func (w *Wire) UnmapWindow(wid xproto.Window)   { w.record("unmap-window %#x", wid) }

func (w *Wire) ConfigureWindow(wid xproto.Window, mask uint16, values []uint32) {
	w.record("configure-window %#x mask=%#x values=%v", wid, mask, values)
}

func (w *Wire) ChangeWindowAttributes(wid xproto.Window, mask uint32, values []uint32) {
	w.record("change-attributes %#x mask=%#x values=%v", wid, mask, values)
}

func (w *Wire) SetName(wid xproto.Window, name, class string) error {
	w.record("set-name %#x name=%q class=%q", wid, name, class)
	return nil
}

func (w *Wire) PictFormats() (*render.QueryPictFormatsReply, error) {
	if w.Formats == nil {
		return nil, errors.New("render not initialised")
	}
	return w.Formats, nil
}

func (w *Wire) CreatePicture(wid xproto.Window, format render.Pictformat) (render.Picture, error) {
	w.nextID++
	w.record("create-picture %#x window=%#x format=%#x", w.nextID, wid, format)
	return render.Picture(w.nextID), nil
}

func (w *Wire) FreePicture(pid render.Picture) { w.record("free-picture %#x", pid) }

// Keysym encodes its arguments so lookups are visible in assertions.
func (w *Wire) Keysym(code xproto.Keycode, column byte) xproto.Keysym {
	return xproto.Keysym(uint32(code)<<8 | uint32(column))
}

func (w *Wire) WaitForEvent() (xgb.Event, xgb.Error) {
	w.record("wait-for-event")
	if len(w.Events) == 0 {
		return nil, nil
	}
	ev := w.Events[0]
	w.Events = w.Events[1:]
	return ev, nil
}

func (w *Wire) Sync() {
	w.Syncs++
	w.record("sync")
}

func (w *Wire) Close() {
	w.Closed = true
	w.record("close")
}
