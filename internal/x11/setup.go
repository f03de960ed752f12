package x11

import (
	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
)

// Screens returns a cursor over the screens of a setup reply.
func Screens(setup *xproto.SetupInfo) Cursor[xproto.ScreenInfo] {
	return Begin(setup.Roots)
}

// Depths returns a cursor over the depths a screen allows.
func Depths(screen *xproto.ScreenInfo) Cursor[xproto.DepthInfo] {
	return Begin(screen.AllowedDepths)
}

// Visuals returns a cursor over the visual types of a depth.
func Visuals(depth *xproto.DepthInfo) Cursor[xproto.VisualInfo] {
	return Begin(depth.Visuals)
}

// RootScreen returns the first screen of the setup reply.
func RootScreen(setup *xproto.SetupInfo) (*xproto.ScreenInfo, error) {
	screens := Screens(setup)
	if !screens.Valid() {
		return nil, ErrNoScreen
	}
	return screens.Get(), nil
}

// RootVisual scans screen -> depth -> visual in document order and returns
// the first visual type whose id is its screen's declared root visual.
func RootVisual(setup *xproto.SetupInfo) (*xproto.VisualInfo, error) {
	for screen := range Each(setup.Roots) {
		for depth := range Each(screen.AllowedDepths) {
			for visual := range Each(depth.Visuals) {
				if visual.VisualId == screen.RootVisual {
					return visual, nil
				}
			}
		}
	}
	return nil, ErrNoRootVisual
}

// PictFormat finds the RENDER picture format the server associates with
// visual.
func PictFormat(reply *render.QueryPictFormatsReply, visual xproto.Visualid) (render.Pictformat, error) {
	for screen := range Each(reply.Screens) {
		for depth := range Each(screen.Depths) {
			for pv := range Each(depth.Visuals) {
				if pv.Visual == visual {
					return pv.Format, nil
				}
			}
		}
	}
	return 0, ErrNoPictFormat
}
