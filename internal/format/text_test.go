package format

import "testing"

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[32mgo\x1b[0m \x1b[33myaml\x1b[0m", "go yaml"},
		{"\x1b[1;31;40mbold red\x1b[0m", "bold red"},
	}

	for _, tt := range tests {
		if got := StripAnsi(tt.input); got != tt.expected {
			t.Errorf("StripAnsi(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"dotfiles", 8},
		{"\x1b[31mred\x1b[0m", 3},
		{"🔥", 2},
		{"⚡️", 2},
		{"🔥 hot", 6},
		{"日本語", 6},
		{"Hello, 世界!", 12},
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.input); got != tt.expected {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		maxWidth      int
		expectedStr   string
		expectedWidth int
	}{
		{"fits", "hello", 10, "hello", 5},
		{"exact fit", "hello", 5, "hello", 5},
		{"cut ascii", "hello world", 8, "hello...", 8},
		{"cut before emoji boundary", "🔥 fire", 5, "🔥...", 5},
		{"color carried through", "\x1b[31mred text\x1b[0m", 6, "\x1b[31mred...\x1b[0m", 6},
		{"too narrow for anything", "hello", 3, "...", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStr, gotWidth := TruncateToWidth(tt.input, tt.maxWidth)
			if gotStr != tt.expectedStr {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, gotStr, tt.expectedStr)
			}
			if gotWidth != tt.expectedWidth {
				t.Errorf("TruncateToWidth(%q, %d) width = %d, want %d", tt.input, tt.maxWidth, gotWidth, tt.expectedWidth)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input        string
		visibleWidth int
		targetWidth  int
		expected     string
	}{
		{"hello", 5, 5, "hello"},
		{"hi", 2, 5, "hi   "},
		{"hello", 5, 3, "hello"},
		{"\x1b[31mred\x1b[0m", 3, 5, "\x1b[31mred\x1b[0m  "},
	}

	for _, tt := range tests {
		got := PadRight(tt.input, tt.visibleWidth, tt.targetWidth)
		if got != tt.expected {
			t.Errorf("PadRight(%q, %d, %d) = %q, want %q", tt.input, tt.visibleWidth, tt.targetWidth, got, tt.expected)
		}
	}
}
