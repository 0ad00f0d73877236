package chord

import (
	"fmt"
	"strings"
)

// Code represents a platform virtual key code.
// Values follow the ANSI virtual key code layout so raw event codes can
// be used directly.
type Code uint16

// ANSI letter and digit codes.
const (
	CodeA Code = 0x00
	CodeS Code = 0x01
	CodeD Code = 0x02
	CodeF Code = 0x03
	CodeH Code = 0x04
	CodeG Code = 0x05
	CodeZ Code = 0x06
	CodeX Code = 0x07
	CodeC Code = 0x08
	CodeV Code = 0x09
	CodeB Code = 0x0B
	CodeQ Code = 0x0C
	CodeW Code = 0x0D
	CodeE Code = 0x0E
	CodeR Code = 0x0F
	CodeY Code = 0x10
	CodeT Code = 0x11
	Code1 Code = 0x12
	Code2 Code = 0x13
	Code3 Code = 0x14
	Code4 Code = 0x15
	Code6 Code = 0x16
	Code5 Code = 0x17
	Code9 Code = 0x19
	Code7 Code = 0x1A
	Code8 Code = 0x1C
	Code0 Code = 0x1D
	CodeO Code = 0x1F
	CodeU Code = 0x20
	CodeI Code = 0x22
	CodeP Code = 0x23
	CodeL Code = 0x25
	CodeJ Code = 0x26
	CodeK Code = 0x28
	CodeN Code = 0x2D
	CodeM Code = 0x2E
)

// Special key codes.
const (
	CodeReturn    Code = 0x24
	CodeTab       Code = 0x30
	CodeSpace     Code = 0x31
	CodeBackspace Code = 0x33
	CodeEscape    Code = 0x35
	CodeLeft      Code = 0x7B
	CodeRight     Code = 0x7C
	CodeDown      Code = 0x7D
	CodeUp        Code = 0x7E
)

// Function key codes.
const (
	CodeF1  Code = 0x7A
	CodeF2  Code = 0x78
	CodeF3  Code = 0x63
	CodeF4  Code = 0x76
	CodeF5  Code = 0x60
	CodeF6  Code = 0x61
	CodeF7  Code = 0x62
	CodeF8  Code = 0x64
	CodeF9  Code = 0x65
	CodeF10 Code = 0x6D
	CodeF11 Code = 0x67
	CodeF12 Code = 0x6F
)

// codeNameMap maps key names (lowercase) to Code values.
var codeNameMap = map[string]Code{
	"a": CodeA, "b": CodeB, "c": CodeC, "d": CodeD, "e": CodeE,
	"f": CodeF, "g": CodeG, "h": CodeH, "i": CodeI, "j": CodeJ,
	"k": CodeK, "l": CodeL, "m": CodeM, "n": CodeN, "o": CodeO,
	"p": CodeP, "q": CodeQ, "r": CodeR, "s": CodeS, "t": CodeT,
	"u": CodeU, "v": CodeV, "w": CodeW, "x": CodeX, "y": CodeY,
	"z": CodeZ,
	"0": Code0, "1": Code1, "2": Code2, "3": Code3, "4": Code4,
	"5": Code5, "6": Code6, "7": Code7, "8": Code8, "9": Code9,
	"return":    CodeReturn,
	"enter":     CodeReturn,
	"tab":       CodeTab,
	"space":     CodeSpace,
	"backspace": CodeBackspace,
	"delete":    CodeBackspace,
	"escape":    CodeEscape,
	"esc":       CodeEscape,
	"left":      CodeLeft,
	"right":     CodeRight,
	"down":      CodeDown,
	"up":        CodeUp,
	"f1":        CodeF1,
	"f2":        CodeF2,
	"f3":        CodeF3,
	"f4":        CodeF4,
	"f5":        CodeF5,
	"f6":        CodeF6,
	"f7":        CodeF7,
	"f8":        CodeF8,
	"f9":        CodeF9,
	"f10":       CodeF10,
	"f11":       CodeF11,
	"f12":       CodeF12,
}

// codeDisplayMap is the reverse of codeNameMap with one canonical name
// per code, built once at init.
var codeDisplayMap = func() map[Code]string {
	m := make(map[Code]string, len(codeNameMap))
	// Later entries in this list win, so canonical names come last.
	for _, name := range []string{
		"enter", "return", "delete", "backspace", "esc", "escape",
	} {
		m[codeNameMap[name]] = name
	}
	for name, code := range codeNameMap {
		if _, ok := m[code]; !ok {
			m[code] = name
		}
	}
	return m
}()

// CodeFromName returns the Code for a given key name (case-insensitive).
// Returns false if the name is not recognized.
func CodeFromName(name string) (Code, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	c, ok := codeNameMap[name]
	return c, ok
}

// String returns the canonical key name, or a hex form for codes
// outside the named set.
func (c Code) String() string {
	if name, ok := codeDisplayMap[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(c))
}
