// Package event decodes X events and routes them to typed handlers.
package event

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Kind is an event type tag with the sent-event bit cleared.
type Kind uint8

const (
	KeyPress         Kind = xproto.KeyPress
	KeyRelease       Kind = xproto.KeyRelease
	ButtonPress      Kind = xproto.ButtonPress
	ButtonRelease    Kind = xproto.ButtonRelease
	MotionNotify     Kind = xproto.MotionNotify
	EnterNotify      Kind = xproto.EnterNotify
	LeaveNotify      Kind = xproto.LeaveNotify
	FocusIn          Kind = xproto.FocusIn
	FocusOut         Kind = xproto.FocusOut
	KeymapNotify     Kind = xproto.KeymapNotify
	Expose           Kind = xproto.Expose
	GraphicsExposure Kind = xproto.GraphicsExposure
	NoExposure       Kind = xproto.NoExposure
	VisibilityNotify Kind = xproto.VisibilityNotify
	CreateNotify     Kind = xproto.CreateNotify
	DestroyNotify    Kind = xproto.DestroyNotify
	UnmapNotify      Kind = xproto.UnmapNotify
	MapNotify        Kind = xproto.MapNotify
	MapRequest       Kind = xproto.MapRequest
	ReparentNotify   Kind = xproto.ReparentNotify
	ConfigureNotify  Kind = xproto.ConfigureNotify
	ConfigureRequest Kind = xproto.ConfigureRequest
	GravityNotify    Kind = xproto.GravityNotify
	ResizeRequest    Kind = xproto.ResizeRequest
	CirculateNotify  Kind = xproto.CirculateNotify
	CirculateRequest Kind = xproto.CirculateRequest
	PropertyNotify   Kind = xproto.PropertyNotify
	SelectionClear   Kind = xproto.SelectionClear
	SelectionRequest Kind = xproto.SelectionRequest
	SelectionNotify  Kind = xproto.SelectionNotify
	ColormapNotify   Kind = xproto.ColormapNotify
	ClientMessage    Kind = xproto.ClientMessage
	MappingNotify    Kind = xproto.MappingNotify
	GenericEvent     Kind = 35

	kindCount = int(GenericEvent) + 1
)

// sendEventBit marks events produced by SendEvent. Routing ignores it.
const sendEventBit = 0x80

var kindNames = [kindCount]string{
	KeyPress:         "KeyPress",
	KeyRelease:       "KeyRelease",
	ButtonPress:      "ButtonPress",
	ButtonRelease:    "ButtonRelease",
	MotionNotify:     "MotionNotify",
	EnterNotify:      "EnterNotify",
	LeaveNotify:      "LeaveNotify",
	FocusIn:          "FocusIn",
	FocusOut:         "FocusOut",
	KeymapNotify:     "KeymapNotify",
	Expose:           "Expose",
	GraphicsExposure: "GraphicsExposure",
	NoExposure:       "NoExposure",
	VisibilityNotify: "VisibilityNotify",
	CreateNotify:     "CreateNotify",
	DestroyNotify:    "DestroyNotify",
	UnmapNotify:      "UnmapNotify",
	MapNotify:        "MapNotify",
	MapRequest:       "MapRequest",
	ReparentNotify:   "ReparentNotify",
	ConfigureNotify:  "ConfigureNotify",
	ConfigureRequest: "ConfigureRequest",
	GravityNotify:    "GravityNotify",
	ResizeRequest:    "ResizeRequest",
	CirculateNotify:  "CirculateNotify",
	CirculateRequest: "CirculateRequest",
	PropertyNotify:   "PropertyNotify",
	SelectionClear:   "SelectionClear",
	SelectionRequest: "SelectionRequest",
	SelectionNotify:  "SelectionNotify",
	ColormapNotify:   "ColormapNotify",
	ClientMessage:    "ClientMessage",
	MappingNotify:    "MappingNotify",
	GenericEvent:     "GenericEvent",
}

// KindOf derives the kind from a raw type tag.
func KindOf(tag byte) Kind {
	return Kind(tag &^ sendEventBit)
}

// Valid reports whether k is one of the routed kinds.
func (k Kind) Valid() bool {
	return k >= KeyPress && int(k) < kindCount
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every routed kind in tag order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-int(KeyPress))
	for k := KeyPress; int(k) < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Classify returns the kind of a decoded event.
func Classify(ev xgb.Event) Kind {
	switch ev.(type) {
	case xproto.KeyPressEvent:
		return KeyPress
	case xproto.KeyReleaseEvent:
		return KeyRelease
	case xproto.ButtonPressEvent:
		return ButtonPress
	case xproto.ButtonReleaseEvent:
		return ButtonRelease
	case xproto.MotionNotifyEvent:
		return MotionNotify
	case xproto.EnterNotifyEvent:
		return EnterNotify
	case xproto.LeaveNotifyEvent:
		return LeaveNotify
	case xproto.FocusInEvent:
		return FocusIn
	case xproto.FocusOutEvent:
		return FocusOut
	case xproto.KeymapNotifyEvent:
		return KeymapNotify
	case xproto.ExposeEvent:
		return Expose
	case xproto.GraphicsExposureEvent:
		return GraphicsExposure
	case xproto.NoExposureEvent:
		return NoExposure
	case xproto.VisibilityNotifyEvent:
		return VisibilityNotify
	case xproto.CreateNotifyEvent:
		return CreateNotify
	case xproto.DestroyNotifyEvent:
		return DestroyNotify
	case xproto.UnmapNotifyEvent:
		return UnmapNotify
	case xproto.MapNotifyEvent:
		return MapNotify
	case xproto.MapRequestEvent:
		return MapRequest
	case xproto.ReparentNotifyEvent:
		return ReparentNotify
	case xproto.ConfigureNotifyEvent:
		return ConfigureNotify
	case xproto.ConfigureRequestEvent:
		return ConfigureRequest
	case xproto.GravityNotifyEvent:
		return GravityNotify
	case xproto.ResizeRequestEvent:
		return ResizeRequest
	case xproto.CirculateNotifyEvent:
		return CirculateNotify
	case xproto.CirculateRequestEvent:
		return CirculateRequest
	case xproto.PropertyNotifyEvent:
		return PropertyNotify
	case xproto.SelectionClearEvent:
		return SelectionClear
	case xproto.SelectionRequestEvent:
		return SelectionRequest
	case xproto.SelectionNotifyEvent:
		return SelectionNotify
	case xproto.ColormapNotifyEvent:
		return ColormapNotify
	case xproto.ClientMessageEvent:
		return ClientMessage
	case xproto.MappingNotifyEvent:
		return MappingNotify
	case Generic:
		return GenericEvent
	}
	raw := ev.Bytes()
	if len(raw) == 0 {
		return 0
	}
	return KindOf(raw[0])
}

// Decode turns a raw 32-byte event into its concrete type using the event
// constructors registered by xproto.
func Decode(raw []byte) (xgb.Event, error) {
	if len(raw) < 32 {
		return nil, fmt.Errorf("decode event: short buffer: %d bytes", len(raw))
	}
	kind := KindOf(raw[0])
	if kind == GenericEvent {
		return Generic(raw), nil
	}
	newEvent, ok := xgb.NewEventFuncs[int(kind)]
	if !ok {
		return nil, fmt.Errorf("decode event: unknown kind %d", uint8(kind))
	}
	return newEvent(raw), nil
}

// Generic carries an extension event (type 35) undecoded.
type Generic []byte

func (g Generic) Bytes() []byte { return g }

// SequenceId returns the sequence number of the request the event follows.
func (g Generic) SequenceId() uint16 {
	if len(g) < 4 {
		return 0
	}
	return xgb.Get16(g[2:])
}

func (g Generic) String() string {
	var ext byte
	if len(g) > 1 {
		ext = g[1]
	}
	return fmt.Sprintf("GenericEvent {Extension: %d, Sequence: %d, Length: %d}", ext, g.SequenceId(), len(g))
}
