package xmac

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = AddrFrom6([6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})

func TestFormatTo(t *testing.T) {
	tests := []struct {
		format Format
		size   int
		want   string
	}{
		{FormatUnix, 18, "00:11:22:33:44:55"},
		{FormatSunUnix, 18, "0:11:22:33:44:55"},
		{FormatCisco, 15, "0011.2233.4455"},
		{Format802CanonLower, 18, "00-11-22-33-44-55"},
		{FormatPacked, 12, "001122334455"},
		{FormatPackedLower, 12, "001122334455"},
		{Format802Canon, 18, "00-11-22-33-44-55"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			buf := make([]byte, tt.size)
			n, err := FormatTo(sample, tt.format, buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestFormatTo_Case(t *testing.T) {
	addr := AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
	tests := []struct {
		format Format
		want   string
	}{
		{FormatUnix, "aa:bb:cc:dd:ee:ff"},
		{FormatSunUnix, "aa:bb:cc:dd:ee:ff"},
		{FormatCisco, "aabb.ccdd.eeff"},
		{Format802CanonLower, "aa-bb-cc-dd-ee-ff"},
		{FormatPacked, "AABBCCDDEEFF"},
		{FormatPackedLower, "aabbccddeeff"},
		{Format802Canon, "AA-BB-CC-DD-EE-FF"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf [32]byte
			n, err := FormatTo(addr, tt.format, buf[:])
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestFormatTo_SunUnixDropsLeadingZeros(t *testing.T) {
	addr := AddrFrom6([6]byte{0x00, 0x01, 0x0a, 0x10, 0xf0, 0xff})
	assert.Equal(t, "0:1:a:10:f0:ff", addr.FormatString(FormatSunUnix))
	assert.Equal(t, "0:0:0:0:0:0", Addr{}.FormatString(FormatSunUnix))
}

// 缓冲区少一个字节时失败且不写入；恰好等于下限时成功。
func TestFormatTo_BufferFloor(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			floor := f.MinBufferLen()

			short := bytes.Repeat([]byte{'#'}, floor-1)
			n, err := FormatTo(sample, f, short)
			assert.ErrorIs(t, err, ErrBufferTooSmall)
			assert.Zero(t, n)
			assert.Equal(t, bytes.Repeat([]byte{'#'}, floor-1), short, "buffer modified on failure")

			exact := make([]byte, floor)
			n, err = FormatTo(sample, f, exact)
			require.NoError(t, err)
			assert.Equal(t, sample.FormatString(f), string(exact[:n]))
		})
	}
}

func TestFormatTo_EmptyBuffer(t *testing.T) {
	_, err := FormatTo(sample, FormatPacked, nil)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

// 写入不越过 len(buf)，即使底层数组更大。
func TestFormatTo_RespectsStatedCapacity(t *testing.T) {
	backing := bytes.Repeat([]byte{'#'}, 32)
	n, err := FormatTo(sample, FormatPacked, backing[:12])
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, "001122334455", string(backing[:12]))
	assert.Equal(t, bytes.Repeat([]byte{'#'}, 20), backing[12:])
}

func TestFormatTo_NoTerminator(t *testing.T) {
	buf := bytes.Repeat([]byte{'#'}, 18)
	n, err := FormatTo(sample, FormatUnix, buf)
	require.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.Equal(t, byte('#'), buf[17])
}

// 未知格式按 802 规范格式输出，缓冲区下限同样按默认格式计算。
func TestFormatTo_UnknownFallsBackToDefault(t *testing.T) {
	unknown := Format(200)
	assert.Equal(t, 18, unknown.MinBufferLen())

	buf := make([]byte, 18)
	n, err := FormatTo(sample, unknown, buf)
	require.NoError(t, err)
	assert.Equal(t, "00-11-22-33-44-55", string(buf[:n]))

	_, err = FormatTo(sample, unknown, make([]byte, 17))
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	assert.Equal(t, "AA-BB-CC-DD-EE-FF", MustParse("aa:bb:cc:dd:ee:ff").FormatString(unknown))
}

func TestFormatTo_ErrorDetail(t *testing.T) {
	_, err := FormatTo(sample, FormatCisco, make([]byte, 14))
	require.Error(t, err)
	assert.Equal(t, "xmac: buffer too small: cisco needs 15 bytes, got 14", err.Error())
}

func TestAddr_AppendFormat(t *testing.T) {
	dst := []byte("mac=")
	dst = sample.AppendFormat(dst, FormatCisco)
	assert.Equal(t, "mac=0011.2233.4455", string(dst))
}

func TestAddr_String(t *testing.T) {
	assert.Equal(t, "00:11:22:33:44:55", sample.String())
	assert.Equal(t, "00:00:00:00:00:00", Addr{}.String())
	assert.Equal(t, sample.HardwareAddr().String(), sample.String())
}

// 除打包格式外，所有格式的输出都能被 Parse 解析回原地址。
// 打包格式插入分隔符后同样可以解析回原地址。
func TestFormat_RoundTrip(t *testing.T) {
	addrs := []Addr{
		{},
		sample,
		AddrFrom6([6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}),
		AddrFrom6([6]byte{0xde, 0xad, 0xbe, 0xef, 0x0a, 0x01}),
	}
	for _, a := range addrs {
		for _, f := range []Format{FormatUnix, Format802CanonLower, Format802Canon} {
			got, err := Parse(a.FormatString(f))
			require.NoError(t, err)
			assert.Equal(t, a, got, "format %s", f)
		}
		for _, f := range []Format{FormatPacked, FormatPackedLower} {
			got, err := Parse(insertSeparators(a.FormatString(f), ':'))
			require.NoError(t, err)
			assert.Equal(t, a, got, "format %s", f)
		}
	}
}

// insertSeparators 将 12 字符的打包格式转换为 17 字符的分隔格式。
func insertSeparators(packed string, sep byte) string {
	out := make([]byte, 0, textLen)
	for i := 0; i < len(packed); i += 2 {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, packed[i], packed[i+1])
	}
	return string(out)
}

func TestFormats(t *testing.T) {
	all := Formats()
	require.Len(t, all, 7)
	assert.Equal(t, Format802Canon, all[0])

	seen := make(map[string]bool)
	for _, f := range all {
		name := f.String()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
		assert.Positive(t, f.MinBufferLen())
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("  CISCO ")
	require.NoError(t, err)
	assert.Equal(t, FormatCisco, got)

	_, err = ParseFormat("bogus")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "802canon", Format802Canon.String())
	assert.Equal(t, "packedlc", FormatPackedLower.String())
	assert.Equal(t, "Format(99)", Format(99).String())
}

func TestFormat_TextMarshaling(t *testing.T) {
	text, err := FormatSunUnix.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sununix", string(text))

	_, err = Format(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownFormat)

	var f Format
	require.NoError(t, f.UnmarshalText([]byte("802canonlc")))
	assert.Equal(t, Format802CanonLower, f)

	assert.ErrorIs(t, f.UnmarshalText([]byte("nope")), ErrUnknownFormat)

	var nilFormat *Format
	assert.ErrorIs(t, nilFormat.UnmarshalText([]byte("unix")), ErrNilReceiver)
}
