package guid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const (
	// Size is the length of a GUID on the wire.
	Size = 16
	// TextSize is the length of the canonical text form.
	TextSize = 36
)

// GUID is a 16-byte identifier in ASF wire order
type GUID [Size]byte

// Nil is the all-zero GUID
var Nil GUID

// Parse converts canonical text into a GUID.
// Hex digits may be in either case.
func Parse(s string) (GUID, error) {
	if err := validateText(s); err != nil {
		return Nil, err
	}

	var g GUID
	binary.LittleEndian.PutUint32(g[0:], uint32(hexGroup(s[0:8])))
	binary.LittleEndian.PutUint16(g[4:], uint16(hexGroup(s[9:13])))
	binary.LittleEndian.PutUint16(g[6:], uint16(hexGroup(s[14:18])))
	binary.BigEndian.PutUint16(g[8:], uint16(hexGroup(s[19:23])))

	// Data5 is the low 48 bits of a big-endian uint64
	var tail [8]byte
	binary.BigEndian.PutUint64(tail[:], hexGroup(s[24:36]))
	copy(g[10:], tail[2:])

	return g, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for package-level GUID constants.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromBytes copies a 16-byte wire GUID
func FromBytes(b []byte) (GUID, error) {
	if len(b) != Size {
		return Nil, &FormatError{Op: "decode", Input: hex.EncodeToString(b), Pos: -1, Err: ErrInvalidLength}
	}

	var g GUID
	copy(g[:], b)
	return g, nil
}

// Encode serializes a text GUID into its 16-byte wire representation
func Encode(s string) ([]byte, error) {
	g, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return g.Bytes(), nil
}

// Decode converts a 16-byte wire GUID into uppercase canonical text
func Decode(b []byte) (string, error) {
	g, err := FromBytes(b)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// String returns the uppercase canonical text form
func (g GUID) String() string {
	var tail [8]byte
	copy(tail[2:], g[10:])

	return fmt.Sprintf("%08X-%04X-%04X-%04X-%012X",
		binary.LittleEndian.Uint32(g[0:4]),
		binary.LittleEndian.Uint16(g[4:6]),
		binary.LittleEndian.Uint16(g[6:8]),
		binary.BigEndian.Uint16(g[8:10]),
		binary.BigEndian.Uint64(tail[:]),
	)
}

// Bytes returns a copy of the wire representation
func (g GUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, g[:])
	return b
}

// IsNil reports whether g is the all-zero GUID
func (g GUID) IsNil() bool {
	return g == Nil
}

func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g GUID) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

func (g *GUID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// validateText checks length, hyphen positions and hex digits
func validateText(s string) error {
	if len(s) != TextSize {
		return &FormatError{Op: "parse", Input: s, Pos: -1, Err: ErrInvalidLength}
	}

	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return &FormatError{Op: "parse", Input: s, Pos: i, Err: ErrInvalidSeparator}
			}
		default:
			if _, ok := hexDigit(s[i]); !ok {
				return &FormatError{Op: "parse", Input: s, Pos: i, Err: ErrInvalidHex}
			}
		}
	}

	return nil
}

// hexGroup folds an already validated hex group into an integer
func hexGroup(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		d, _ := hexDigit(s[i])
		v = v<<4 | uint64(d)
	}
	return v
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
