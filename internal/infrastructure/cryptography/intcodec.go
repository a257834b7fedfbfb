package cryptography

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
)

// EncodeToInt maps application data onto the unsigned big-integer domain RSA
// operates on. Strings are encoded as their UTF-8 bytes directly; any other
// value is marshalled to JSON first. The resulting bytes are interpreted as a
// big-endian base-256 number, so an empty string encodes to 0.
func EncodeToInt(data any) (*big.Int, error) {
	var buf []byte
	switch v := data.(type) {
	case string:
		buf = []byte(v)
	default:
		out, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize data: %w", err)
		}
		buf = out
	}
	return new(big.Int).SetBytes(buf), nil
}

// DecodeFromInt reverses EncodeToInt. Zero decodes to the empty string: the
// byte length of 0 is ambiguous, so leading zero bytes cannot survive a
// round trip. Any other value is converted to its minimal big-endian byte
// form (big.Int.Bytes, equivalent to even-nibble-padded hex) and read as
// UTF-8 text; if the text parses as JSON the parsed value is returned,
// otherwise the text itself.
//
// The scheme carries no type tag, so plain text that happens to be valid
// JSON (such as "123" or "null") decodes as the JSON value rather than the
// string. This ambiguity is inherent to the encoding.
func DecodeFromInt(m *big.Int) any {
	if m == nil || m.Sign() == 0 {
		return ""
	}
	text := string(m.Bytes())
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return parsed
	}
	return text
}

// intToBase64 renders the minimal big-endian byte form of z as a standard
// Base64 transport string. Zero renders as the empty string.
func intToBase64(z *big.Int) string {
	return base64.StdEncoding.EncodeToString(z.Bytes())
}

// base64ToInt parses a transport string produced by intToBase64.
func base64ToInt(s string) (*big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return new(big.Int).SetBytes(raw), nil
}
