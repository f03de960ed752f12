// Package keys turns key press events into terminal input bytes.
package keys

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
)

// NoSymbol is the keysym of an empty keyboard mapping slot.
const NoSymbol xproto.Keysym = 0

// significantMods are the modifiers that change what a key produces. Lock
// and Mod2 (NumLock on most servers) are left out.
const significantMods = xproto.ModMaskShift |
	xproto.ModMaskControl |
	xproto.ModMask1 |
	xproto.ModMask3 |
	xproto.ModMask4 |
	xproto.ModMask5

// Keymap is the server's keycode to keysym table. *x11.Connection
// satisfies it.
type Keymap interface {
	Keysym(code xproto.Keycode, column byte) xproto.Keysym
}

// Decoder resolves key press events against a keymap.
type Decoder struct {
	keymap Keymap
	logger *slog.Logger
}

// NewDecoder returns a decoder that reads keysyms from keymap.
func NewDecoder(keymap Keymap, logger *slog.Logger) *Decoder {
	return &Decoder{keymap: keymap, logger: logger}
}

// Lookup resolves code to a keysym. Control is masked off first so a chord
// resolves to its base symbol.
func (d *Decoder) Lookup(code xproto.Keycode, state uint16) xproto.Keysym {
	state &^= xproto.ModMaskControl

	var column byte
	if state&xproto.ModMaskShift != 0 {
		column = 1
	}
	sym := d.keymap.Keysym(code, column)
	if sym == NoSymbol && column == 1 {
		sym = d.keymap.Keysym(code, 0)
	}
	if state&xproto.ModMaskLock != 0 && sym >= 'a' && sym <= 'z' {
		sym -= 'a' - 'A'
	}
	return sym
}

// Resolve decodes a key press. It reports false when the key does not
// produce a character.
func (d *Decoder) Resolve(code xproto.Keycode, state uint16) (byte, bool) {
	sym := d.Lookup(code, state)
	ch, ok := Translate(sym, state)
	if !ok {
		d.logger.Debug("key ignored",
			"keycode", code,
			"keysym", fmt.Sprintf("%#x", uint32(sym)),
			"state", fmt.Sprintf("%#x", state))
		return 0, false
	}
	d.logger.Debug("key decoded",
		"keycode", code,
		"char", Name(ch),
		"code", fmt.Sprintf("%#x", ch))
	return ch, true
}

// Translate maps a resolved keysym and modifier state to an input byte.
// Modifier keys never produce one. With exactly Control or Control+Shift
// held the symbol goes through the Control-chord table; otherwise printable
// ASCII passes through unchanged.
func Translate(sym xproto.Keysym, state uint16) (byte, bool) {
	if IsModifier(sym) {
		return 0, false
	}
	switch state & significantMods {
	case xproto.ModMaskControl, xproto.ModMaskControl | xproto.ModMaskShift:
		return ControlCode(sym)
	}
	if sym >= 0x20 && sym <= 0x7e {
		return byte(sym), true
	}
	return 0, false
}

// IsModifier reports whether sym names a modifier key.
func IsModifier(sym xproto.Keysym) bool {
	switch {
	case sym >= 0xffe1 && sym <= 0xffee: // Shift_L .. Hyper_R
		return true
	case sym >= 0xfe01 && sym <= 0xfe13: // ISO_Lock .. ISO_Level5_Lock
		return true
	case sym == 0xff7e || sym == 0xff7f: // Mode_switch, Num_Lock
		return true
	}
	return false
}
