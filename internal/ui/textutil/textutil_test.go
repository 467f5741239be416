package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"overview", 0, "overview"},
		{"overview", 8, "overview"},
		{"overview", 5, "over…"},
		{"overview", 1, "…"},
		{"日本語タブ", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if tt.width > 0 && Width(Truncate(tt.in, tt.width)) > tt.width {
			t.Errorf("Truncate(%q, %d) wider than limit", tt.in, tt.width)
		}
	}
}
