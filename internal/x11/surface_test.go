package x11

import (
	"errors"
	"fmt"
	"testing"
)

func newTestSurface(t *testing.T, fw *fakeWire) (*Window, *Surface) {
	t.Helper()
	conn := newTestConnection(fw)
	win, err := NewWindow(conn, Geometry{})
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	surface, err := NewSurface(win, 1, 1)
	if err != nil {
		t.Fatalf("create surface: %v", err)
	}
	return win, surface
}

func TestNewSurface_UsesRootVisualFormat(t *testing.T) {
	fw := newFakeWire()
	win, surface := newTestSurface(t, fw)

	if surface.Visual().VisualId != testVisual {
		t.Fatalf("expected root visual %#x, got %#x", testVisual, surface.Visual().VisualId)
	}
	if surface.Visual() != &fw.Info.Roots[0].AllowedDepths[0].Visuals[1] {
		t.Fatalf("expected the visual to point into the setup reply")
	}
	if surface.Window() != win {
		t.Fatalf("expected surface to report its window")
	}

	want := fmt.Sprintf("create-picture %#x window=%#x format=%#x", uint32(surface.picture), win.ID(), testFormat)
	if last := fw.Calls[len(fw.Calls)-1]; last != want {
		t.Fatalf("expected %q, got %q", want, last)
	}
}

func TestSurface_ResizeChangesOnlyDimensions(t *testing.T) {
	fw := newFakeWire()
	_, surface := newTestSurface(t, fw)

	before := *surface
	calls := len(fw.Calls)

	surface.Resize(640, 480)

	want := before
	want.width, want.height = 640, 480
	if *surface != want {
		t.Fatalf("expected only the dimensions to change: got %+v, want %+v", *surface, want)
	}
	if w, h := surface.Size(); w != 640 || h != 480 {
		t.Fatalf("expected 640x480, got %dx%d", w, h)
	}
	if len(fw.Calls) != calls {
		t.Fatalf("resize issued requests: %v", fw.Calls[calls:])
	}
}

func TestNewSurface_MinimumSize(t *testing.T) {
	fw := newFakeWire()
	conn := newTestConnection(fw)
	win, err := NewWindow(conn, Geometry{})
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	surface, err := NewSurface(win, 0, 0)
	if err != nil {
		t.Fatalf("create surface: %v", err)
	}
	if w, h := surface.Size(); w != 1 || h != 1 {
		t.Fatalf("expected 1x1, got %dx%d", w, h)
	}
}

func TestSurface_FlushSyncs(t *testing.T) {
	fw := newFakeWire()
	_, surface := newTestSurface(t, fw)

	surface.Flush()
	if fw.Syncs != 1 {
		t.Fatalf("expected one sync, got %d", fw.Syncs)
	}

	surface.Destroy()
	surface.Flush()
	if fw.Syncs != 1 {
		t.Fatalf("expected no sync after destroy, got %d", fw.Syncs)
	}
}

func TestNewSurface_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(w *fakeWire)
		want   error
	}{
		{
			name:   "no picture format for the root visual",
			mutate: func(w *fakeWire) { w.Formats = testFormats(0x20, testFormat) },
			want:   ErrNoPictFormat,
		},
		{
			name: "root visual missing from the setup",
			mutate: func(w *fakeWire) {
				w.Info.Roots[0].RootVisual = 0x99
			},
			want: ErrNoRootVisual,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fw := newFakeWire()
			tc.mutate(fw)
			conn := newTestConnection(fw)
			win, err := NewWindow(conn, Geometry{})
			if err != nil {
				t.Fatalf("create window: %v", err)
			}

			surface, err := NewSurface(win, 1, 1)
			if surface != nil {
				t.Fatalf("expected no surface")
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if err := win.Destroy(); err != nil {
				t.Fatalf("window should be free after failed surface: %v", err)
			}
		})
	}
}

func TestSurface_DestroyFreesPictureOnce(t *testing.T) {
	fw := newFakeWire()
	_, surface := newTestSurface(t, fw)

	surface.Destroy()
	surface.Destroy()

	want := fmt.Sprintf("free-picture %#x", uint32(surface.picture))
	frees := 0
	for _, call := range fw.Calls {
		if call == want {
			frees++
		}
	}
	if frees != 1 {
		t.Fatalf("expected one free request, got %d", frees)
	}
}
