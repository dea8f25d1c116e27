package xmac

import (
	"encoding/json"
	"net"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{"colon", "aa:bb:cc:dd:ee:ff"},
		{"dash", "AA-BB-CC-DD-EE-FF"},
		{"bad_length", "aa:bb:cc"},
		{"bad_hex", "aa:bb:cc:dd:ee:fg"},
	}

	for _, tc := range inputs {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Parse(tc.input)
			}
		})
	}
}

// BenchmarkParse_Stdlib 对比 net.ParseMAC。
func BenchmarkParse_Stdlib(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = net.ParseMAC("aa:bb:cc:dd:ee:ff")
	}
}

func BenchmarkFormatTo(b *testing.B) {
	addr := MustParse("aa:bb:cc:dd:ee:ff")
	var buf [18]byte
	for _, f := range Formats() {
		b.Run(f.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = FormatTo(addr, f, buf[:])
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	addr := MustParse("aa:bb:cc:dd:ee:ff")
	b.ReportAllocs()
	for b.Loop() {
		_ = addr.String()
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	addr := MustParse("aa:bb:cc:dd:ee:ff")
	b.ReportAllocs()
	for b.Loop() {
		_, _ = json.Marshal(addr)
	}
}
