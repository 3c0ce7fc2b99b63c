package util

import "testing"

func TestTrimAndLower(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  MySQL  ", "mysql"},
		{"mysql", "mysql"},
		{"", ""},
		{"\tMariaDB\n", "mariadb"},
	}
	for _, tt := range tests {
		if got := TrimAndLower(tt.in); got != tt.want {
			t.Errorf("TrimAndLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimEmptyCheck(t *testing.T) {
	if s, ok := TrimEmptyCheck("  value  "); !ok || s != "value" {
		t.Errorf("TrimEmptyCheck() = %q, %v", s, ok)
	}
	if s, ok := TrimEmptyCheck("   "); ok || s != "" {
		t.Errorf("TrimEmptyCheck(blank) = %q, %v", s, ok)
	}
}

func TestTrimWithDefault(t *testing.T) {
	if got := TrimWithDefault("  custom  ", "default"); got != "custom" {
		t.Errorf("TrimWithDefault() = %q, want custom", got)
	}
	if got := TrimWithDefault("   ", "default"); got != "default" {
		t.Errorf("TrimWithDefault(blank) = %q, want default", got)
	}
}
