//go:build bench
// +build bench

package guid

import "testing"

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Encode("75B22630-668E-11CF-A6D9-00AA0062CE6C"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	raw := []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGUID_UUID(b *testing.B) {
	g := MustParse("75B22630-668E-11CF-A6D9-00AA0062CE6C")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.UUID()
	}
}
