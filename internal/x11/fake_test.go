package x11

import (
	"log/slog"

	"github.com/1broseidon/termwin/internal/x11/x11test"
)

type fakeWire = x11test.Wire

const (
	testRoot   = x11test.Root
	testVisual = x11test.Visual
	testFormat = x11test.Format
)

var (
	newFakeWire = x11test.NewWire
	testFormats = x11test.PictFormats
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestConnection(w *fakeWire) *Connection {
	conn, err := NewConnection(w, testLogger())
	if err != nil {
		panic(err)
	}
	return conn
}
