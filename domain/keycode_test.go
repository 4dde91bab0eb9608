package domain_test

import (
	"testing"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

func TestKeyCode_DetailEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  domain.KeyCode
		want string
	}{
		{"plain", domain.NewKeyCode("Value", "ValueRequired"), "ValueRequired"},
		{"int", domain.KeyCodeWithIntDetail("Value", "ValueTooShort", 3), "ValueTooShort:3"},
		{"negative int", domain.KeyCodeWithIntDetail("Id", "IdInvalid", -1), "IdInvalid:-1"},
		{"string", domain.KeyCodeWithStringDetail("Value", "ValueString", "value"), "ValueString:value"},
		{"list", domain.KeyCodeWithStringListDetail("Value", "ValueList", []string{"value1", "value2"}), "ValueList:value1;value2"},
		{"empty list", domain.KeyCodeWithStringListDetail("Value", "ValueList", nil), "ValueList:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got.Code != tt.want {
				t.Errorf("Code = %q, want %q", tt.got.Code, tt.want)
			}
		})
	}
}

func TestKeyCode_BaseCodeAndDetails(t *testing.T) {
	t.Parallel()

	list := domain.KeyCodeWithStringListDetail("Value", "ValueList", []string{"a", "b"})
	if got := list.BaseCode(); got != "ValueList" {
		t.Errorf("BaseCode() = %q, want ValueList", got)
	}
	if got := list.Details(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Details() = %v, want [a b]", got)
	}

	plain := domain.NewKeyCode("Value", "ValueRequired")
	if got := plain.BaseCode(); got != "ValueRequired" {
		t.Errorf("BaseCode() = %q, want ValueRequired", got)
	}
	if got := plain.Details(); got != nil {
		t.Errorf("Details() = %v, want nil", got)
	}
}

func TestKeyCode_EqualityAndString(t *testing.T) {
	t.Parallel()

	if domain.NewKeyCode("k", "c") != domain.NewKeyCode("k", "c") {
		t.Error("identical KeyCodes compare unequal")
	}
	if domain.NewKeyCode("k", "c") == domain.NewKeyCode("k", "d") {
		t.Error("different KeyCodes compare equal")
	}
	if got := domain.NewKeyCode("key1", "code1").String(); got != "key1: code1" {
		t.Errorf("String() = %q, want %q", got, "key1: code1")
	}
}

func TestKeyCode_WithKeyPrefix(t *testing.T) {
	t.Parallel()

	k := domain.NewKeyCode("Value", "ValueTooShort:3")

	if got := k.WithKeyPrefix("SubValue"); got.Key != "SubValue.Value" || got.Code != k.Code {
		t.Errorf("WithKeyPrefix() = %+v", got)
	}
	if got := k.WithKeyPrefix(""); got != k {
		t.Errorf("WithKeyPrefix(\"\") = %+v, want unchanged", got)
	}
}
