package xmac

import (
	"fmt"
	"net"
)

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 始终恰好 6 个八位组，按书写顺序从高到低排列
//   - 可直接比较（==）和用作 map key
//   - 零值是全零地址 00:00:00:00:00:00，同样是合法地址
//   - 并发安全，无需加锁
//
// 使用 [Parse] 或 [AddrFrom6] 创建地址：
//
//	addr, err := xmac.Parse("00:11:22:33:44:55")
//	addr := xmac.AddrFrom6([6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// AddrFromSlice 从字节切片创建 MAC 地址。
// 切片长度必须为 6，否则返回 [ErrBadLength]。
func AddrFromSlice(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrBadLength, len(b))
	}
	var a Addr
	copy(a.bytes[:], b)
	return a, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 仅接受 6 字节地址，EUI-64 等其他长度返回 [ErrBadLength]。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return AddrFromSlice(hw)
}

// Bytes 返回 6 字节副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// Octet 返回第 i 个八位组（0 为最高位字节）。
// i 超出 [0, 5] 时 panic，与数组越界行为一致。
func (a Addr) Octet(i int) byte {
	return a.bytes[i]
}

// Compare 按网络字节序比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（新分配的副本）。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}
