package fallback

import "testing"

func TestSafeString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		fb       string
		expected string
	}{
		{"plain string", "hello", "fb", "hello"},
		{"trims whitespace", "  hi  ", "fb", "hi"},
		{"empty string", "", "fb", "fb"},
		{"whitespace only", "   ", "fb", "fb"},
		{"non-string", 42, "fb", "fb"},
		{"nil", nil, "fb", "fb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeString(tc.value, tc.fb); got != tc.expected {
				t.Errorf("SafeString(%v) = %q, want %q", tc.value, got, tc.expected)
			}
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		fb       int
		expected int
	}{
		{"float64", float64(3), 1, 3},
		{"int", 2, 1, 2},
		{"string number", "4", 1, 4},
		{"zero falls back", 0, 1, 1},
		{"negative falls back", -2, 1, 1},
		{"garbage string", "abc", 1, 1},
		{"nil", nil, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeInt(tc.value, tc.fb); got != tc.expected {
				t.Errorf("SafeInt(%v) = %d, want %d", tc.value, got, tc.expected)
			}
		})
	}
}

// The variation counter in the UI is a +/- stepper; no sequence of increments
// or decrements may push the effective count outside [1,4].
func TestClampVariations(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{-10, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 4},
		{5, 4},
		{100, 4},
	}

	for _, tc := range tests {
		if got := ClampVariations(tc.in); got != tc.expected {
			t.Errorf("ClampVariations(%d) = %d, want %d", tc.in, got, tc.expected)
		}
	}

	// simulate a long increment sequence
	n := 1
	for i := 0; i < 50; i++ {
		n = ClampVariations(n + 1)
	}
	if n != 4 {
		t.Errorf("after 50 increments, count = %d, want 4", n)
	}
	for i := 0; i < 50; i++ {
		n = ClampVariations(n - 1)
	}
	if n != 1 {
		t.Errorf("after 50 decrements, count = %d, want 1", n)
	}
}

func TestSafeAspectRatio(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"16:9", "16:9"},
		{"9:16", "9:16"},
		{"1:1", "1:1"},
		{"4:3", "4:3"},
		{"3:4", "3:4"},
		{" 16:9 ", "16:9"},
		{"", "16:9"},
		{"21:9", "16:9"},
		{"wide", "16:9"},
	}

	for _, tc := range tests {
		if got := SafeAspectRatio(tc.in); got != tc.expected {
			t.Errorf("SafeAspectRatio(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}
