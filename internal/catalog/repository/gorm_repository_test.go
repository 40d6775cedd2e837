package repository

import "testing"

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain term", "headphones", "headphones"},
		{"percent", "50% off", `50\% off`},
		{"underscore", "usb_c", `usb\_c`},
		{"backslash", `a\b`, `a\\b`},
		{"all metacharacters", `%_\`, `\%\_\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeLike(tt.term); got != tt.want {
				t.Errorf("escapeLike(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}
