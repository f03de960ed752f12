package keys

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

type controlChord struct {
	sym  xproto.Keysym
	code byte
	name string
}

// controlChords is the canonical Control-chord table. Digits 2 through 8
// reach codes that some keyboards cannot type as punctuation.
var controlChords = []controlChord{
	{'@', 0x00, "NUL"},
	{'A', 0x01, "SOH"},
	{'B', 0x02, "STX"},
	{'C', 0x03, "ETX"},
	{'D', 0x04, "EOT"},
	{'E', 0x05, "ENQ"},
	{'F', 0x06, "ACK"},
	{'G', 0x07, "BEL"},
	{'H', 0x08, "BS"},
	{'I', 0x09, "HT"},
	{'J', 0x0a, "LF"},
	{'K', 0x0b, "VT"},
	{'L', 0x0c, "FF"},
	{'M', 0x0d, "CR"},
	{'N', 0x0e, "SO"},
	{'O', 0x0f, "SI"},
	{'P', 0x10, "DLE"},
	{'Q', 0x11, "DC1"},
	{'R', 0x12, "DC2"},
	{'S', 0x13, "DC3"},
	{'T', 0x14, "DC4"},
	{'U', 0x15, "NAK"},
	{'V', 0x16, "SYN"},
	{'W', 0x17, "ETB"},
	{'X', 0x18, "CAN"},
	{'Y', 0x19, "EM"},
	{'Z', 0x1a, "SUB"},
	{'[', 0x1b, "ESC"},
	{'\\', 0x1c, "FS"},
	{']', 0x1d, "GS"},
	{'^', 0x1e, "RS"},
	{'_', 0x1f, "US"},
	{'?', 0x7f, "DEL"},
	{'2', 0x00, "NUL"},
	{'3', 0x1b, "ESC"},
	{'4', 0x1c, "FS"},
	{'5', 0x1d, "GS"},
	{'6', 0x1e, "RS"},
	{'7', 0x1f, "US"},
	{'8', 0x7f, "DEL"},
}

var (
	chordCodes = make(map[xproto.Keysym]byte, len(controlChords))
	codeNames  = make(map[byte]string, 33)
)

func init() {
	for _, c := range controlChords {
		chordCodes[c.sym] = c.code
		codeNames[c.code] = c.name
	}
}

// ControlCode maps the base symbol of a Control chord to its ASCII control
// code. Lowercase letters fold to uppercase.
func ControlCode(sym xproto.Keysym) (byte, bool) {
	if sym >= 'a' && sym <= 'z' {
		sym -= 'a' - 'A'
	}
	code, ok := chordCodes[sym]
	return code, ok
}

// Name returns a printable name for a decoded character: the ASCII
// mnemonic for control codes, the quoted character otherwise.
func Name(ch byte) string {
	if name, ok := codeNames[ch]; ok {
		return name
	}
	return fmt.Sprintf("%q", rune(ch))
}
