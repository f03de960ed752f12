package event

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// A handler opts into a kind by implementing the matching interface. Kinds
// without an implemented interface are discarded by the dispatcher.
type (
	KeyPressHandler         interface{ KeyPress(xproto.KeyPressEvent) }
	KeyReleaseHandler       interface{ KeyRelease(xproto.KeyReleaseEvent) }
	ButtonPressHandler      interface{ ButtonPress(xproto.ButtonPressEvent) }
	ButtonReleaseHandler    interface{ ButtonRelease(xproto.ButtonReleaseEvent) }
	MotionNotifyHandler     interface{ MotionNotify(xproto.MotionNotifyEvent) }
	EnterNotifyHandler      interface{ EnterNotify(xproto.EnterNotifyEvent) }
	LeaveNotifyHandler      interface{ LeaveNotify(xproto.LeaveNotifyEvent) }
	FocusInHandler          interface{ FocusIn(xproto.FocusInEvent) }
	FocusOutHandler         interface{ FocusOut(xproto.FocusOutEvent) }
	KeymapNotifyHandler     interface{ KeymapNotify(xproto.KeymapNotifyEvent) }
	ExposeHandler           interface{ Expose(xproto.ExposeEvent) }
	GraphicsExposureHandler interface{ GraphicsExposure(xproto.GraphicsExposureEvent) }
	NoExposureHandler       interface{ NoExposure(xproto.NoExposureEvent) }
	VisibilityNotifyHandler interface{ VisibilityNotify(xproto.VisibilityNotifyEvent) }
	CreateNotifyHandler     interface{ CreateNotify(xproto.CreateNotifyEvent) }
	DestroyNotifyHandler    interface{ DestroyNotify(xproto.DestroyNotifyEvent) }
	UnmapNotifyHandler      interface{ UnmapNotify(xproto.UnmapNotifyEvent) }
	MapNotifyHandler        interface{ MapNotify(xproto.MapNotifyEvent) }
	MapRequestHandler       interface{ MapRequest(xproto.MapRequestEvent) }
	ReparentNotifyHandler   interface{ ReparentNotify(xproto.ReparentNotifyEvent) }
	ConfigureNotifyHandler  interface{ ConfigureNotify(xproto.ConfigureNotifyEvent) }
	ConfigureRequestHandler interface{ ConfigureRequest(xproto.ConfigureRequestEvent) }
	GravityNotifyHandler    interface{ GravityNotify(xproto.GravityNotifyEvent) }
	ResizeRequestHandler    interface{ ResizeRequest(xproto.ResizeRequestEvent) }
	CirculateNotifyHandler  interface{ CirculateNotify(xproto.CirculateNotifyEvent) }
	CirculateRequestHandler interface{ CirculateRequest(xproto.CirculateRequestEvent) }
	PropertyNotifyHandler   interface{ PropertyNotify(xproto.PropertyNotifyEvent) }
	SelectionClearHandler   interface{ SelectionClear(xproto.SelectionClearEvent) }
	SelectionRequestHandler interface{ SelectionRequest(xproto.SelectionRequestEvent) }
	SelectionNotifyHandler  interface{ SelectionNotify(xproto.SelectionNotifyEvent) }
	ColormapNotifyHandler   interface{ ColormapNotify(xproto.ColormapNotifyEvent) }
	ClientMessageHandler    interface{ ClientMessage(xproto.ClientMessageEvent) }
	MappingNotifyHandler    interface{ MappingNotify(xproto.MappingNotifyEvent) }
	GenericHandler          interface{ Generic(Generic) }
)

// route delivers one event to a handler. It reports false when the event is
// not of the routed concrete type.
type route func(ev xgb.Event) bool

func bind[H any, E xgb.Event](h any, deliver func(H, E)) route {
	typed, ok := h.(H)
	if !ok {
		return nil
	}
	return func(ev xgb.Event) bool {
		e, ok := ev.(E)
		if ok {
			deliver(typed, e)
		}
		return ok
	}
}

// routesFor resolves the handler's capabilities once, indexed by kind.
func routesFor(h any) [kindCount]route {
	return [kindCount]route{
		KeyPress:         bind(h, KeyPressHandler.KeyPress),
		KeyRelease:       bind(h, KeyReleaseHandler.KeyRelease),
		ButtonPress:      bind(h, ButtonPressHandler.ButtonPress),
		ButtonRelease:    bind(h, ButtonReleaseHandler.ButtonRelease),
		MotionNotify:     bind(h, MotionNotifyHandler.MotionNotify),
		EnterNotify:      bind(h, EnterNotifyHandler.EnterNotify),
		LeaveNotify:      bind(h, LeaveNotifyHandler.LeaveNotify),
		FocusIn:          bind(h, FocusInHandler.FocusIn),
		FocusOut:         bind(h, FocusOutHandler.FocusOut),
		KeymapNotify:     bind(h, KeymapNotifyHandler.KeymapNotify),
		Expose:           bind(h, ExposeHandler.Expose),
		GraphicsExposure: bind(h, GraphicsExposureHandler.GraphicsExposure),
		NoExposure:       bind(h, NoExposureHandler.NoExposure),
		VisibilityNotify: bind(h, VisibilityNotifyHandler.VisibilityNotify),
		CreateNotify:     bind(h, CreateNotifyHandler.CreateNotify),
		DestroyNotify:    bind(h, DestroyNotifyHandler.DestroyNotify),
		UnmapNotify:      bind(h, UnmapNotifyHandler.UnmapNotify),
		MapNotify:        bind(h, MapNotifyHandler.MapNotify),
		MapRequest:       bind(h, MapRequestHandler.MapRequest),
		ReparentNotify:   bind(h, ReparentNotifyHandler.ReparentNotify),
		ConfigureNotify:  bind(h, ConfigureNotifyHandler.ConfigureNotify),
		ConfigureRequest: bind(h, ConfigureRequestHandler.ConfigureRequest),
		GravityNotify:    bind(h, GravityNotifyHandler.GravityNotify),
		ResizeRequest:    bind(h, ResizeRequestHandler.ResizeRequest),
		CirculateNotify:  bind(h, CirculateNotifyHandler.CirculateNotify),
		CirculateRequest: bind(h, CirculateRequestHandler.CirculateRequest),
		PropertyNotify:   bind(h, PropertyNotifyHandler.PropertyNotify),
		SelectionClear:   bind(h, SelectionClearHandler.SelectionClear),
		SelectionRequest: bind(h, SelectionRequestHandler.SelectionRequest),
		SelectionNotify:  bind(h, SelectionNotifyHandler.SelectionNotify),
		ColormapNotify:   bind(h, ColormapNotifyHandler.ColormapNotify),
		ClientMessage:    bind(h, ClientMessageHandler.ClientMessage),
		MappingNotify:    bind(h, MappingNotifyHandler.MappingNotify),
		GenericEvent:     bind(h, GenericHandler.Generic),
	}
}
