package chat

import (
	"strings"
	"testing"
)

func TestValidateMessageText(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		valid    bool
		expected string
	}{
		{"simple text", "hello", true, "hello"},
		{"trims whitespace", "  hello  ", true, "hello"},
		{"empty", "", false, ""},
		{"whitespace only", "   \t\n", false, ""},
		{"exactly 1000 characters", strings.Repeat("a", 1000), true, strings.Repeat("a", 1000)},
		{"1001 characters", strings.Repeat("a", 1001), false, ""},
		{"1000 after trim", "  " + strings.Repeat("a", 1000) + "  ", true, strings.Repeat("a", 1000)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateMessageText(tc.raw)

			if result.Valid != tc.valid {
				t.Fatalf("ValidateMessageText(%q).Valid = %v, expected %v (reason: %q)", tc.raw, result.Valid, tc.valid, result.Reason)
			}

			if result.Valid && result.Value != tc.expected {
				t.Errorf("ValidateMessageText(%q).Value = %q, expected %q", tc.raw, result.Value, tc.expected)
			}

			if !result.Valid && result.Reason == "" {
				t.Error("invalid result should carry a reason")
			}
		})
	}
}

func TestValidateMessageID(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		valid    bool
		expected uint
	}{
		{"simple id", "42", true, 42},
		{"trims whitespace", " 7 ", true, 7},
		{"not a number", "abc", false, 0},
		{"empty", "", false, 0},
		{"zero", "0", false, 0},
		{"negative", "-1", false, 0},
		{"float", "1.5", false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateMessageID(tc.raw)

			if result.Valid != tc.valid {
				t.Fatalf("ValidateMessageID(%q).Valid = %v, expected %v", tc.raw, result.Valid, tc.valid)
			}

			if result.Valid && result.Value != tc.expected {
				t.Errorf("ValidateMessageID(%q).Value = %d, expected %d", tc.raw, result.Value, tc.expected)
			}
		})
	}
}
