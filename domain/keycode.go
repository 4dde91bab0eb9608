package domain

import (
	"strconv"
	"strings"
)

// Separators used when a detail payload is encoded into a code.
const (
	DetailSeparator = ":"
	ListSeparator   = ";"
)

// KeyCode is a single validation failure: the offending field path and a
// machine-readable reason. Code may carry an encoded detail payload, as in
// "ValueTooShort:3".
type KeyCode struct {
	Key  string `json:"key"`
	Code string `json:"code"`
}

// NewKeyCode stores key and code verbatim.
func NewKeyCode(key, code string) KeyCode {
	return KeyCode{Key: key, Code: code}
}

// KeyCodeWithIntDetail encodes value as "{code}:{value}".
func KeyCodeWithIntDetail(key, code string, value int) KeyCode {
	return KeyCode{Key: key, Code: code + DetailSeparator + strconv.Itoa(value)}
}

// KeyCodeWithStringDetail encodes value as "{code}:{value}". The value is not
// escaped.
func KeyCodeWithStringDetail(key, code, value string) KeyCode {
	return KeyCode{Key: key, Code: code + DetailSeparator + value}
}

// KeyCodeWithStringListDetail encodes values as "{code}:{v1};{v2};...". The
// values are not escaped; a value containing ";" cannot be split back apart.
func KeyCodeWithStringListDetail(key, code string, values []string) KeyCode {
	return KeyCode{Key: key, Code: code + DetailSeparator + strings.Join(values, ListSeparator)}
}

// BaseCode returns Code without its detail payload.
func (k KeyCode) BaseCode() string {
	base, _, _ := strings.Cut(k.Code, DetailSeparator)
	return base
}

// Details returns the detail payload split on ListSeparator, or nil when the
// code carries no payload.
func (k KeyCode) Details() []string {
	_, detail, ok := strings.Cut(k.Code, DetailSeparator)
	if !ok {
		return nil
	}
	return strings.Split(detail, ListSeparator)
}

// WithKeyPrefix returns a copy whose key is prefixed with "{prefix}.". An empty
// prefix returns k unchanged.
func (k KeyCode) WithKeyPrefix(prefix string) KeyCode {
	if prefix == "" {
		return k
	}
	return KeyCode{Key: prefix + "." + k.Key, Code: k.Code}
}

// String implements fmt.Stringer.
func (k KeyCode) String() string {
	return k.Key + ": " + k.Code
}
