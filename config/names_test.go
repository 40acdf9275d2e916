package config

import "testing"

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"doc.json", "doc.json"},
		{"My Doc.yaml", "My Doc.yaml"},
		{"a/b:c", "abc"},
		{"..hidden", "hidden"},
		{"tab\there", "tabhere"},
		{"", badFileName},
		{"///", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntryName(t *testing.T) {
	if got := EntryName("input", "/some/dir/doc.json"); got != "input/doc.json" {
		t.Errorf("EntryName() = %q", got)
	}
	if got := EntryName("output", ""); got != "output/"+badFileName {
		t.Errorf("EntryName() = %q", got)
	}
}
