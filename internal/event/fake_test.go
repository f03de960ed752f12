package event

import (
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

type pulled struct {
	ev   xgb.Event
	xerr xgb.Error
}

// fakeSource replays a scripted stream and records the loop's calls.
type fakeSource struct {
	stream  []pulled
	pulls   int
	flushes int
	log     []string
}

func (s *fakeSource) WaitForEvent() (xgb.Event, xgb.Error) {
	s.pulls++
	s.log = append(s.log, "pull")
	if len(s.stream) == 0 {
		return nil, nil
	}
	next := s.stream[0]
	s.stream = s.stream[1:]
	return next.ev, next.xerr
}

func (s *fakeSource) Flush() {
	s.flushes++
	s.log = append(s.log, "flush")
}

type fakeTarget struct {
	source *fakeSource
	mask   uint32
	values []uint32
}

func (t *fakeTarget) SetAttributes(mask uint32, values ...uint32) {
	t.mask = mask
	t.values = values
	if t.source != nil {
		t.source.log = append(t.source.log, "subscribe")
	}
}

// keyAndResize implements only the two handlers the shell wires.
type keyAndResize struct {
	keys    []xproto.KeyPressEvent
	resizes []xproto.ConfigureNotifyEvent
}

func (h *keyAndResize) KeyPress(ev xproto.KeyPressEvent) {
	h.keys = append(h.keys, ev)
}

func (h *keyAndResize) ConfigureNotify(ev xproto.ConfigureNotifyEvent) {
	h.resizes = append(h.resizes, ev)
}

type fakeProtocolError struct{}

func (fakeProtocolError) SequenceId() uint16 { return 7 }
func (fakeProtocolError) BadId() uint32      { return 0x400001 }
func (fakeProtocolError) Error() string      { return "BadWindow {NiceName: Window, Sequence: 7, BadValue: 4194305}" }

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// everyKind returns one event of each routed kind in tag order.
func everyKind() []xgb.Event {
	generic := make(Generic, 32)
	generic[0] = byte(GenericEvent)
	return []xgb.Event{
		xproto.KeyPressEvent{Detail: 38},
		xproto.KeyReleaseEvent{},
		xproto.ButtonPressEvent{},
		xproto.ButtonReleaseEvent{},
		xproto.MotionNotifyEvent{},
		xproto.EnterNotifyEvent{},
		xproto.LeaveNotifyEvent{},
		xproto.FocusInEvent{},
		xproto.FocusOutEvent{},
		xproto.KeymapNotifyEvent{},
		xproto.ExposeEvent{},
		xproto.GraphicsExposureEvent{},
		xproto.NoExposureEvent{},
		xproto.VisibilityNotifyEvent{},
		xproto.CreateNotifyEvent{},
		xproto.DestroyNotifyEvent{},
		xproto.UnmapNotifyEvent{},
		xproto.MapNotifyEvent{},
		xproto.MapRequestEvent{},
		xproto.ReparentNotifyEvent{},
		xproto.ConfigureNotifyEvent{Width: 640, Height: 480},
		xproto.ConfigureRequestEvent{},
		xproto.GravityNotifyEvent{},
		xproto.ResizeRequestEvent{},
		xproto.CirculateNotifyEvent{},
		xproto.CirculateRequestEvent{},
		xproto.PropertyNotifyEvent{},
		xproto.SelectionClearEvent{},
		xproto.SelectionRequestEvent{},
		xproto.SelectionNotifyEvent{},
		xproto.ColormapNotifyEvent{},
		xproto.ClientMessageEvent{},
		xproto.MappingNotifyEvent{},
		generic,
	}
}
