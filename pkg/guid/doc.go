// Package guid converts ASF object GUIDs between their text and wire forms.
//
// ASF headers store every object and codec tag as a 16-byte GUID in the
// Microsoft mixed-endian layout. The canonical text form is the familiar
// 36-character hyphen-grouped hex string.
//
// # Wire Format
//
//	[Data1(4)][Data2(2)][Data3(2)][Data4(2)][Data5(6)]
//
// Fields:
//   - Data1: first text group, 32-bit unsigned integer (little-endian)
//   - Data2: second text group, 16-bit unsigned integer (little-endian)
//   - Data3: third text group, 16-bit unsigned integer (little-endian)
//   - Data4: fourth text group, 16-bit unsigned integer (big-endian)
//   - Data5: fifth text group, 48-bit unsigned integer (big-endian)
//
// For example the ASF header object GUID
//
//	75B22630-668E-11CF-A6D9-00AA0062CE6C
//
// is stored as
//
//	30 26 B2 75 8E 66 CF 11 A6 D9 00 AA 00 62 CE 6C
//
// # Usage
//
//	raw, err := guid.Encode("75B22630-668E-11CF-A6D9-00AA0062CE6C")
//	if err != nil {
//	    return err
//	}
//
//	text, err := guid.Decode(raw)
//	if err != nil {
//	    return err
//	}
//
// Parse and FromBytes return the GUID value type instead, which can be
// compared, used as a map key, and marshalled as text or binary.
//
// # Error Handling
//
// Input is checked before anything is decoded. Text must be exactly 36
// characters with hyphens at offsets 8, 13, 18 and 23 and hex digits
// everywhere else; byte input must be exactly 16 bytes. Failures are
// reported as *FormatError wrapping ErrInvalidLength, ErrInvalidSeparator
// or ErrInvalidHex.
//
// # Thread Safety
//
// All functions are pure. GUID is a value type and safe to share.
package guid
