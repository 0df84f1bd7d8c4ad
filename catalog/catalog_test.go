package catalog

import "testing"

func TestParseICD10Version(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2019", true},
		{"2010", true},
		{"2024", true},
		{"2009", false},
		{"2025", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		v, err := ParseICD10Version(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseICD10Version(%q) err = %v; want ok = %v", tt.input, err, tt.ok)
		}
		if tt.ok && string(v) != tt.input {
			t.Errorf("ParseICD10Version(%q) = %q; want %q", tt.input, v, tt.input)
		}
	}
}

func TestParseICDO3Version(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2014", true},
		{"2019", true},
		{"2021", false},
		{"first", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, err := ParseICDO3Version(tt.input); (err == nil) != tt.ok {
			t.Errorf("ParseICDO3Version(%q) err = %v; want ok = %v", tt.input, err, tt.ok)
		}
	}
}

func TestInMemory(t *testing.T) {
	s := NewInMemory()
	s.AddICD10("2019", "C25.0", "C61")
	s.AddTopography(ICDO3FirstRevision, "C25.0")
	s.AddMorphology(ICDO3FirstRevision, "8140/3")
	s.AddMedications("L01BC02")

	if !s.Codings("2019").Contains("C25.0") {
		t.Error("Codings(2019) should contain C25.0")
	}
	if s.Codings("2019").Contains("X99.9") {
		t.Error("Codings(2019) should not contain X99.9")
	}
	if s.Codings("2020").Contains("C25.0") {
		t.Error("Codings(2020) has no data and should contain nothing")
	}
	if !s.Topography(ICDO3FirstRevision).Contains("C25.0") {
		t.Error("Topography(2014) should contain C25.0")
	}
	if !s.Morphology(ICDO3FirstRevision).Contains("8140/3") {
		t.Error("Morphology(2014) should contain 8140/3")
	}
	if !s.Medications().Contains("L01BC02") {
		t.Error("Medications() should contain L01BC02")
	}

	if got := len(s.Versions()); got != 1 {
		t.Errorf("len(Versions()) = %d; want 1", got)
	}
}
