// Package guid implements the 128-bit class identifier codec used by the
// nativecom generator and runtime.
//
// Identifiers are written in the canonical hyphenated form, five groups of
// hex digits with lengths 8-4-4-4-12. The decoded layout mirrors the native
// GUID ABI: the first three groups stay whole 32/16/16-bit values and only
// the last two groups decompose into individual bytes.
package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUID is the decoded field layout of a 128-bit identifier.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Nil is the all-zero identifier.
var Nil GUID

// Parse decodes the canonical hyphenated form into a GUID. Hex digits are
// case-insensitive. Any other shape (wrong length, misplaced hyphens,
// braces, non-hex characters) is rejected; Parse never returns a partially
// decoded value.
func Parse(s string) (GUID, error) {
	if len(s) != 36 {
		return GUID{}, fmt.Errorf("guid: invalid identifier %q: length %d, want 36", s, len(s))
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return GUID{}, fmt.Errorf("guid: invalid identifier %q: want 8-4-4-4-12 hyphenated groups", s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("guid: invalid identifier %q: %w", s, err)
	}
	b := [16]byte(u)
	g := GUID{
		Data1: binary.BigEndian.Uint32(b[0:4]),
		Data2: binary.BigEndian.Uint16(b[4:6]),
		Data3: binary.BigEndian.Uint16(b[6:8]),
	}
	copy(g.Data4[:], b[8:16])
	return g, nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// identifiers fixed at compile time.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the canonical uppercase hyphenated form. For any valid
// input s, Parse(s).String() equals s up to hex case.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// SourceLiteral renders the GUID as Go source text, a composite literal of
// eleven hexadecimal components. qualifier is the package qualifier for the
// GUID type as seen from the generated file, e.g. "nativecom.GUID".
func (g GUID) SourceLiteral(qualifier string) string {
	return fmt.Sprintf("%s{Data1: 0x%08X, Data2: 0x%04X, Data3: 0x%04X, Data4: [8]byte{0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X}}",
		qualifier, g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}
