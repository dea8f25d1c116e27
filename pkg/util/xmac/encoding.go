package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出 [FormatUnix] 格式。
func (a Addr) MarshalText() ([]byte, error) {
	return a.AppendFormat(make([]byte, 0, textLen), FormatUnix), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，按 [Parse] 的严格语法解析。
// 空输入设置为零值。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的 [FormatUnix] 字符串。
//
// 地址文本仅包含 [0-9a-f:]，无需 JSON 转义，直接拼接引号。
func (a Addr) MarshalJSON() ([]byte, error) {
	// len(`"`) + 17 + len(`"`) = 19
	buf := make([]byte, 0, textLen+2)
	buf = append(buf, '"')
	buf = a.AppendFormat(buf, FormatUnix)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 与空字符串设置为零值。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("xmac: decode json: %w", err)
	}
	return a.UnmarshalText([]byte(s))
}

// Value 实现 [driver.Valuer]，写入 [FormatUnix] 字符串。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 6 字节二进制）与 nil。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// BINARY(6) 列存储原始字节；文本形式固定 17 字符，不会与之混淆。
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("xmac: unsupported scan type %T", src)
	}
}
