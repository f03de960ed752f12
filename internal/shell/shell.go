// Package shell wires the window, drawing surface and event loop of the
// terminal window together.
package shell

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/termwin/internal/config"
	"github.com/1broseidon/termwin/internal/event"
	"github.com/1broseidon/termwin/internal/keys"
	"github.com/1broseidon/termwin/internal/x11"
)

// Resizer is the part of the drawing surface the shell drives.
type Resizer interface {
	Resize(width, height uint16)
}

// Shell handles key presses and window resizes. Every other event kind is
// discarded by the dispatcher.
type Shell struct {
	surface Resizer
	keys    *keys.Decoder
	input   func(byte)
	logger  *slog.Logger
}

var (
	_ event.KeyPressHandler        = (*Shell)(nil)
	_ event.ConfigureNotifyHandler = (*Shell)(nil)
)

// New returns a shell that resizes surface and decodes keys with decoder.
func New(surface Resizer, decoder *keys.Decoder, logger *slog.Logger) *Shell {
	return &Shell{
		surface: surface,
		keys:    decoder,
		logger:  logger,
	}
}

// OnInput sets the consumer of decoded input bytes. Without one, decoded
// keys are only logged.
func (s *Shell) OnInput(fn func(byte)) {
	s.input = fn
}

func (s *Shell) KeyPress(ev xproto.KeyPressEvent) {
	ch, ok := s.keys.Resolve(ev.Detail, ev.State)
	if !ok {
		return
	}
	if s.input != nil {
		s.input(ch)
	}
}

func (s *Shell) ConfigureNotify(ev xproto.ConfigureNotifyEvent) {
	s.surface.Resize(ev.Width, ev.Height)
	s.logger.Debug("surface resized", "width", ev.Width, "height", ev.Height)
}

// Run opens the display, shows the window and processes events until the
// display server connection is lost.
func Run(cfg *config.Config, logger *slog.Logger) (err error) {
	conn, err := x11.Open(cfg.Display, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, conn.Close())
	}()

	return run(conn, cfg, logger)
}

func run(conn *x11.Connection, cfg *config.Config, logger *slog.Logger) (err error) {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	win, err := x11.NewWindow(conn, x11.Geometry{Width: 1, Height: 1, Border: cfg.BorderWidth})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, win.Destroy())
	}()

	surface, err := x11.NewSurface(win, 1, 1)
	if err != nil {
		return err
	}
	defer surface.Destroy()

	if err := win.SetName(cfg.Title, "termwin"); err != nil {
		logger.Warn("window name not set", "error", err)
	}

	// Validate bounds both to 1..65535.
	width, height := uint16(cfg.Width), uint16(cfg.Height)
	win.Configure(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight, uint32(width), uint32(height))
	surface.Resize(width, height)
	win.Map()
	surface.Flush()

	sh := New(surface, keys.NewDecoder(conn, logger), logger)

	logger.Info("window mapped",
		"window", fmt.Sprintf("%#x", win.ID()),
		"width", width,
		"height", height)

	event.NewDispatcher(conn, sh, logger).Run(win)
	return nil
}
