// Package codecs maps ASF audio codec identifiers to descriptive names.
//
// The stream properties object of an ASF file carries a 16-bit WAVE format
// tag for each audio stream. Table resolves those tags to the names Windows
// shows for them.
//
// Default returns the built-in table. It is built once on first use and is
// never modified afterwards, so it can be shared freely between goroutines.
//
//	name, ok := codecs.Default().Lookup(0x0161)
//	if !ok {
//	    name = codecs.UnknownName
//	}
//
// A miss is not an error: unregistered tags are valid on the wire and the
// caller decides which label to show.
package codecs
