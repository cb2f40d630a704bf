package language

import "testing"

func TestToISO3(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes convert
		{"en", "eng"},
		{"EN", "eng"},
		{"fr", "fra"},
		{"de", "deu"},
		// 3-letter codes pass through, alternates map to the primary form
		{"eng", "eng"},
		{"fre", "fra"},
		{"ger", "deu"},
		{"chi", "zho"},
		// Word forms
		{"english", "eng"},
		{"French", "fra"},
		// Unknown 3-letter passes through
		{"xyz", "xyz"},
		// Unknown 2-letter and empty fall back to undetermined
		{"xy", "und"},
		{"", "und"},
		{"  ", "und"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToISO3(tt.input); got != tt.expected {
				t.Errorf("ToISO3(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"eng", "English"},
		{"fre", "French"},
		{"japanese", "Japanese"},
		{"xyz", "XYZ"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractFromTags(t *testing.T) {
	if got := ExtractFromTags(map[string]string{"language": "eng"}); got != "eng" {
		t.Fatalf("got %q", got)
	}
	if got := ExtractFromTags(map[string]string{"LANGUAGE": " FRE "}); got != "fre" {
		t.Fatalf("got %q", got)
	}
	if got := ExtractFromTags(map[string]string{"title": "Signs"}); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := ExtractFromTags(nil); got != "" {
		t.Fatalf("expected empty for nil tags, got %q", got)
	}
}
