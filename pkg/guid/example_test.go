package guid_test

import (
	"fmt"
	"log"

	"github.com/ssargent/asfmeta/pkg/guid"
)

// ExampleEncode demonstrates converting header text into wire bytes
func ExampleEncode() {
	raw, err := guid.Encode("75B22630-668E-11CF-A6D9-00AA0062CE6C")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% X\n", raw)

	// Output:
	// 30 26 B2 75 8E 66 CF 11 A6 D9 00 AA 00 62 CE 6C
}

// ExampleDecode demonstrates reading a GUID out of a header buffer
func ExampleDecode() {
	header := []byte{
		0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
		0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
		0x00, 0x10, // object size follows
	}

	text, err := guid.Decode(header[:guid.Size])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(text)

	// Output:
	// 75B22630-668E-11CF-A6D9-00AA0062CE6C
}

// ExampleGUID_UUID demonstrates switching to RFC 4122 byte order
func ExampleGUID_UUID() {
	g := guid.MustParse("8cabdca1-a947-11cf-8ee4-00c00c205365")

	fmt.Println(g)
	fmt.Println(g.UUID())

	// Output:
	// 8CABDCA1-A947-11CF-8EE4-00C00C205365
	// 8cabdca1-a947-11cf-8ee4-00c00c205365
}
