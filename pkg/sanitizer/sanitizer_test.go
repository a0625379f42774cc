package sanitizer

import (
	"slices"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Layla  ", "Layla"},
		{"Abu   Ali", "Abu Ali"},
		{"Wadi\tRum\nDesert", "Wadi Rum Desert"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := TrimAndNormalize(tt.input); got != tt.want {
			t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeText_KeepsLines(t *testing.T) {
	got := NormalizeText("  Wheelchair   access \n  ground floor room  ")
	if want := "Wheelchair access\nground floor room"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Layla.Haddad@Example.JO "); got != "layla.haddad@example.jo" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeSearch(t *testing.T) {
	if got := NormalizeSearch("  Dead   SEA "); got != "dead sea" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "all"},
		{"  ", "all"},
		{"Historical", "historical"},
		{" HIGH ", "high"},
	}
	for _, tt := range tests {
		if got := NormalizeFilter(tt.input, "all"); got != tt.want {
			t.Errorf("NormalizeFilter(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDietaryRestrictions(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, []string{}},
		{"blanks dropped", []string{"", "  ", "Vegan"}, []string{"Vegan"}},
		{"duplicates after trimming", []string{"Halal", " Halal ", "Gluten-free"}, []string{"Halal", "Gluten-free"}},
		{"order preserved", []string{"Vegetarian", "Nut allergy"}, []string{"Vegetarian", "Nut allergy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDietaryRestrictions(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipeline(t *testing.T) {
	p := Pipeline{TrimAndNormalize, lower}
	if got := p.Apply("  Petra  BY Night "); got != "petra by night" {
		t.Errorf("got %q", got)
	}
}
