package keys

import (
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

// mapKeymap is a keyboard mapping keyed by keycode, one keysym per column.
type mapKeymap map[xproto.Keycode][]xproto.Keysym

func (m mapKeymap) Keysym(code xproto.Keycode, column byte) xproto.Keysym {
	syms := m[code]
	if int(column) >= len(syms) {
		return NoSymbol
	}
	return syms[column]
}

const (
	keyC       xproto.Keycode = 54
	keyBracket xproto.Keycode = 34
	keySlash   xproto.Keycode = 61
	key2       xproto.Keycode = 11
	keyA       xproto.Keycode = 38
	keyShiftL  xproto.Keycode = 50
	keyF1      xproto.Keycode = 67
	keyKP5     xproto.Keycode = 84
)

func testKeymap() mapKeymap {
	return mapKeymap{
		keyC:       {'c', 'C'},
		keyBracket: {'[', '{'},
		keySlash:   {'/', '?'},
		key2:       {'2', '@'},
		keyA:       {'a', 'A'},
		keyShiftL:  {0xffe1},
		keyF1:      {0xffbe},
		keyKP5:     {'5'},
	}
}

func testDecoder() *Decoder {
	return NewDecoder(testKeymap(), slog.New(slog.DiscardHandler))
}

const (
	shift   = xproto.ModMaskShift
	lock    = xproto.ModMaskLock
	control = xproto.ModMaskControl
	alt     = xproto.ModMask1
	numLock = xproto.ModMask2
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		code   xproto.Keycode
		state  uint16
		want   byte
		wantOK bool
	}{
		{"ctrl-c", keyC, control, 0x03, true},
		{"ctrl-shift-c", keyC, control | shift, 0x03, true},
		{"ctrl-[ is escape", keyBracket, control, 0x1b, true},
		{"ctrl-? is delete", keySlash, control | shift, 0x7f, true},
		{"ctrl-2 is null", key2, control, 0x00, true},
		{"ctrl-shift-2 resolves @", key2, control | shift, 0x00, true},
		{"ctrl-c with capslock", keyC, control | lock, 0x03, true},
		{"ctrl-c with numlock", keyC, control | numLock, 0x03, true},
		{"ctrl-alt-c is not a chord", keyC, control | alt, 'c', true},
		{"plain a", keyA, 0, 'a', true},
		{"shift a", keyA, shift, 'A', true},
		{"capslock a", keyA, lock, 'A', true},
		{"alt a passes through", keyA, alt, 'a', true},
		{"shift on single-column key", keyKP5, shift, '5', true},
		{"modifier key", keyShiftL, 0, 0, false},
		{"modifier key with control", keyShiftL, control, 0, false},
		{"function key", keyF1, 0, 0, false},
		{"unmapped keycode", 200, 0, 0, false},
	}
	d := testDecoder()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.Resolve(tc.code, tc.state)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("Resolve(%d, %#x) = (%#x, %v), want (%#x, %v)",
					tc.code, tc.state, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name   string
		sym    xproto.Keysym
		state  uint16
		want   byte
		wantOK bool
	}{
		{"C with control", 'C', control, 0x03, true},
		{"[ with control", '[', control, 0x1b, true},
		{"? with control", '?', control, 0x7f, true},
		{"2 with control", '2', control, 0x00, true},
		{"a unmodified", 'a', 0, 'a', true},
		{"space unmodified", ' ', 0, ' ', true},
		{"tilde unmodified", '~', 0, '~', true},
		{"non-printable raw code", 0x01, 0, 0, false},
		{"delete is not printable", 0x7f, 0, 0, false},
		{"latin-1 above ascii", 0xe9, 0, 0, false},
		{"digit outside the alias range", '1', control, 0, false},
		{"control with super is not a chord", 'c', control | xproto.ModMask4, 'c', true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Translate(tc.sym, tc.state)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("Translate(%#x, %#x) = (%#x, %v), want (%#x, %v)",
					tc.sym, tc.state, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTranslate_ModifierNeverACharacter(t *testing.T) {
	modifiers := []xproto.Keysym{
		0xffe1, 0xffe2, 0xffe3, 0xffe4, 0xffe5, 0xffe7, 0xffe9, 0xffeb, 0xffee,
		0xfe03, 0xff7e, 0xff7f,
	}
	states := []uint16{0, shift, control, control | shift, lock, alt}
	for _, sym := range modifiers {
		for _, state := range states {
			if _, ok := Translate(sym, state); ok {
				t.Fatalf("modifier %#x produced a character with state %#x", sym, state)
			}
		}
	}
}

func TestControlCode_Table(t *testing.T) {
	for c := 'A'; c <= 'Z'; c++ {
		want := byte(c - 'A' + 1)
		upper, ok := ControlCode(xproto.Keysym(c))
		if !ok || upper != want {
			t.Fatalf("ControlCode(%q) = (%#x, %v), want %#x", c, upper, ok, want)
		}
		lower, ok := ControlCode(xproto.Keysym(c + 'a' - 'A'))
		if !ok || lower != want {
			t.Fatalf("ControlCode(%q) = (%#x, %v), want %#x", c+'a'-'A', lower, ok, want)
		}
	}

	aliases := map[xproto.Keysym]xproto.Keysym{
		'2': '@', '3': '[', '4': '\\', '5': ']', '6': '^', '7': '_', '8': '?',
	}
	for digit, sym := range aliases {
		a, _ := ControlCode(digit)
		b, _ := ControlCode(sym)
		if a != b {
			t.Fatalf("digit %q should alias %q: %#x != %#x", rune(digit), rune(sym), a, b)
		}
	}

	for _, sym := range []xproto.Keysym{'1', '9', '0', '!', 0xff0d} {
		if _, ok := ControlCode(sym); ok {
			t.Fatalf("expected %#x to have no control code", sym)
		}
	}
}

func TestName(t *testing.T) {
	cases := map[byte]string{
		0x00: "NUL",
		0x03: "ETX",
		0x1b: "ESC",
		0x7f: "DEL",
		'a':  "'a'",
	}
	for ch, want := range cases {
		if got := Name(ch); got != want {
			t.Fatalf("Name(%#x) = %q, want %q", ch, got, want)
		}
	}
}
