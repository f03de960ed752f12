package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
)

// Surface is a RENDER picture bound to a window in the root visual's format.
// The visual is chosen once; only the declared size changes afterwards.
type Surface struct {
	window    *Window
	picture   render.Picture
	format    render.Pictformat
	visual    *xproto.VisualInfo
	width     uint16
	height    uint16
	destroyed bool
}

// NewSurface binds a drawing surface of the given size to win.
func NewSurface(win *Window, width, height uint16) (*Surface, error) {
	if !win.live() {
		return nil, fmt.Errorf("create surface: %w", ErrClosed)
	}
	conn := win.conn

	visual, err := RootVisual(conn.setup)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}

	formats, err := conn.wire.PictFormats()
	if err != nil {
		return nil, fmt.Errorf("create surface: query picture formats: %w", err)
	}
	format, err := PictFormat(formats, visual.VisualId)
	if err != nil {
		return nil, fmt.Errorf("create surface: visual %#x: %w", visual.VisualId, err)
	}

	picture, err := conn.wire.CreatePicture(win.id, format)
	if err != nil {
		return nil, fmt.Errorf("create surface: create picture: %w", err)
	}

	win.surfaces++
	conn.acquire()

	conn.logger.Debug("surface created",
		"window", fmt.Sprintf("%#x", win.id),
		"visual", fmt.Sprintf("%#x", visual.VisualId),
		"format", fmt.Sprintf("%#x", format))

	return &Surface{
		window:  win,
		picture: picture,
		format:  format,
		visual:  visual,
		width:   max(width, 1),
		height:  max(height, 1),
	}, nil
}

// Resize updates the declared dimensions. The picture follows the window, so
// nothing is recreated.
func (s *Surface) Resize(width, height uint16) {
	s.width = width
	s.height = height
}

// Size returns the declared dimensions.
func (s *Surface) Size() (width, height uint16) {
	return s.width, s.height
}

// Visual returns the visual type chosen at construction.
func (s *Surface) Visual() *xproto.VisualInfo {
	return s.visual
}

// Window returns the window the surface is bound to.
func (s *Surface) Window() *Window {
	return s.window
}

// Flush pushes pending drawing to the picture and then flushes the
// connection, so drawing is visible before the next event wait. Drawing
// requests go straight to the connection; there is no client-side batch.
func (s *Surface) Flush() {
	if s.destroyed {
		return
	}
	s.window.conn.Flush()
	s.window.conn.logger.Debug("surface flushed", "width", s.width, "height", s.height)
}

// Destroy frees the picture and releases the surface's hold on its window.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	conn := s.window.conn
	if conn.usable() {
		conn.wire.FreePicture(s.picture)
	}
	s.destroyed = true
	s.window.surfaces--
	conn.release()
	conn.logger.Debug("surface destroyed", "picture", fmt.Sprintf("%#x", s.picture))
}
