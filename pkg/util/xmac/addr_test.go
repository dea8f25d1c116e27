package xmac

import (
	"net"
	"testing"
)

func TestAddrFrom6(t *testing.T) {
	b := [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	addr := AddrFrom6(b)
	if got := addr.Bytes(); got != b {
		t.Errorf("AddrFrom6().Bytes() = %v, want %v", got, b)
	}
}

func TestAddr_BytesIsCopy(t *testing.T) {
	addr := AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
	b := addr.Bytes()
	b[0] = 0x00
	if addr.Octet(0) != 0xaa {
		t.Errorf("modifying Bytes() result changed the address")
	}
}

func TestAddrFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr bool
	}{
		{"valid", []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, false},
		{"zero", []byte{0, 0, 0, 0, 0, 0}, false},
		{"too_short", []byte{0xaa, 0xbb, 0xcc}, true},
		{"too_long", []byte{0, 1, 2, 3, 4, 5, 6}, true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddrFromSlice(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("AddrFromSlice(%v) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddrFromSlice(%v) unexpected error = %v", tt.input, err)
			}
			b := got.Bytes()
			if string(b[:]) != string(tt.input) {
				t.Errorf("AddrFromSlice(%v) = %v", tt.input, got)
			}
		})
	}
}

func TestFromHardwareAddr(t *testing.T) {
	hw, err := net.ParseMAC("00:11:22:33:44:55")
	if err != nil {
		t.Fatal(err)
	}
	addr, err := FromHardwareAddr(hw)
	if err != nil {
		t.Fatalf("FromHardwareAddr() error = %v", err)
	}
	if addr != MustParse("00:11:22:33:44:55") {
		t.Errorf("FromHardwareAddr() = %v", addr)
	}

	eui64, _ := net.ParseMAC("00:11:22:33:44:55:66:77")
	if _, err := FromHardwareAddr(eui64); err == nil {
		t.Errorf("FromHardwareAddr(EUI-64) error = nil, want error")
	}
}

func TestAddr_HardwareAddr(t *testing.T) {
	addr := MustParse("00:11:22:33:44:55")
	hw := addr.HardwareAddr()
	if len(hw) != 6 {
		t.Fatalf("HardwareAddr() len = %d, want 6", len(hw))
	}
	hw[0] = 0xff
	if addr.Octet(0) != 0x00 {
		t.Errorf("modifying HardwareAddr() result changed the address")
	}
}

func TestAddr_Compare(t *testing.T) {
	a := MustParse("00:00:00:00:00:01")
	b := MustParse("00:00:00:00:00:02")
	c := MustParse("01:00:00:00:00:00")

	tests := []struct {
		x, y Addr
		want int
	}{
		{a, a, 0},
		{a, b, -1},
		{b, a, 1},
		{b, c, -1},
		{c, a, 1},
		{Addr{}, a, -1},
	}
	for _, tt := range tests {
		if got := tt.x.Compare(tt.y); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
