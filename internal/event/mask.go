package event

import "github.com/BurntSushi/xgb/xproto"

// EventMask is the fixed subscription installed before the loop starts.
// Other categories are never delivered by the server.
const EventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify
