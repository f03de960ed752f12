package event

import (
	"strings"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

func streamOf(events []xgb.Event, repeat int) []pulled {
	var stream []pulled
	for range repeat {
		for _, ev := range events {
			stream = append(stream, pulled{ev: ev})
		}
	}
	return stream
}

func TestNewDispatcher_ResolvesCapabilities(t *testing.T) {
	d := NewDispatcher(&fakeSource{}, &keyAndResize{}, testLogger())
	for _, k := range Kinds() {
		want := k == KeyPress || k == ConfigureNotify
		if d.Handles(k) != want {
			t.Fatalf("Handles(%v) = %v, want %v", k, d.Handles(k), want)
		}
	}

	none := NewDispatcher(&fakeSource{}, struct{}{}, testLogger())
	for _, k := range Kinds() {
		if none.Handles(k) {
			t.Fatalf("handler with no methods should not handle %v", k)
		}
	}
}

func TestRun_RoutesOnlyImplementedKinds(t *testing.T) {
	for _, repeat := range []int{1, 2} {
		src := &fakeSource{stream: streamOf(everyKind(), repeat)}
		h := &keyAndResize{}
		d := NewDispatcher(src, h, testLogger())

		stats := d.Run(&fakeTarget{})

		if len(h.keys) != repeat || len(h.resizes) != repeat {
			t.Fatalf("repeat %d: expected %d key and resize events, got %d and %d",
				repeat, repeat, len(h.keys), len(h.resizes))
		}
		if h.keys[0].Detail != 38 {
			t.Fatalf("expected the key event to arrive intact, got detail %d", h.keys[0].Detail)
		}
		if h.resizes[0].Width != 640 || h.resizes[0].Height != 480 {
			t.Fatalf("expected 640x480, got %dx%d", h.resizes[0].Width, h.resizes[0].Height)
		}
		for _, k := range Kinds() {
			handled, discarded := stats.Handled[k], stats.Discarded[k]
			if k == KeyPress || k == ConfigureNotify {
				if handled != repeat || discarded != 0 {
					t.Fatalf("repeat %d: %v handled=%d discarded=%d", repeat, k, handled, discarded)
				}
				continue
			}
			if handled != 0 || discarded != repeat {
				t.Fatalf("repeat %d: %v handled=%d discarded=%d", repeat, k, handled, discarded)
			}
		}
		handled, discarded := stats.Totals()
		if handled != 2*repeat || discarded != 32*repeat {
			t.Fatalf("repeat %d: totals handled=%d discarded=%d", repeat, handled, discarded)
		}
	}
}

func TestRun_EndsOnConnectionLoss(t *testing.T) {
	src := &fakeSource{stream: streamOf([]xgb.Event{xproto.ExposeEvent{}}, 3)}
	d := NewDispatcher(src, &keyAndResize{}, testLogger())

	d.Run(&fakeTarget{})

	if src.pulls != 4 {
		t.Fatalf("expected 3 events plus the terminating pull, got %d pulls", src.pulls)
	}
	if last := src.log[len(src.log)-1]; last != "pull" {
		t.Fatalf("expected the loop to stop right after the empty pull, last call was %q", last)
	}
}

func TestRun_SubscribesAndFlushesBeforeFirstWait(t *testing.T) {
	src := &fakeSource{stream: streamOf([]xgb.Event{xproto.ExposeEvent{}}, 1)}
	target := &fakeTarget{source: src}
	d := NewDispatcher(src, &keyAndResize{}, testLogger())

	d.Run(target)

	if target.mask != xproto.CwEventMask {
		t.Fatalf("expected CwEventMask, got %#x", target.mask)
	}
	if len(target.values) != 1 || target.values[0] != EventMask {
		t.Fatalf("expected event mask %#x, got %v", EventMask, target.values)
	}
	want := "subscribe,flush,pull,flush,pull"
	if got := strings.Join(src.log, ","); got != want {
		t.Fatalf("expected call order %q, got %q", want, got)
	}
}

func TestRun_ProtocolErrorsAreCounted(t *testing.T) {
	src := &fakeSource{stream: []pulled{
		{xerr: fakeProtocolError{}},
		{ev: xproto.KeyPressEvent{Detail: 10}},
		{xerr: fakeProtocolError{}},
	}}
	h := &keyAndResize{}
	d := NewDispatcher(src, h, testLogger())

	stats := d.Run(&fakeTarget{})

	if stats.Errors != 2 {
		t.Fatalf("expected 2 protocol errors, got %d", stats.Errors)
	}
	if len(h.keys) != 1 {
		t.Fatalf("expected the loop to continue past errors, got %d keys", len(h.keys))
	}
	if src.pulls != 4 {
		t.Fatalf("expected 4 pulls, got %d", src.pulls)
	}
}

func TestEventMask_Fixed(t *testing.T) {
	want := uint32(xproto.EventMaskKeyPress | xproto.EventMaskExposure | xproto.EventMaskStructureNotify)
	if EventMask != want {
		t.Fatalf("expected %#x, got %#x", want, EventMask)
	}
	if EventMask&xproto.EventMaskButtonPress != 0 || EventMask&xproto.EventMaskPointerMotion != 0 {
		t.Fatalf("pointer categories must not be subscribed")
	}
}
