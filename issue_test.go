package mtbvalidator

import (
	"encoding/json"
	"testing"
)

func TestSeverity_Compare(t *testing.T) {
	ordered := []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityFatal}

	for i, lower := range ordered {
		for j, higher := range ordered {
			got := lower.Compare(higher)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("%s.Compare(%s) = %d; want %d", lower, higher, got, want)
			}
		}
	}
}

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityInfo, true},
		{SeverityWarning, true},
		{SeverityError, true},
		{SeverityFatal, true},
		{Severity("critical"), false},
		{Severity(""), false},
	}

	for _, tt := range tests {
		if got := tt.severity.IsValid(); got != tt.want {
			t.Errorf("Severity(%q).IsValid() = %v; want %v", tt.severity, got, tt.want)
		}
	}
}

func TestIssue_IsError(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityFatal, true},
		{SeverityError, true},
		{SeverityWarning, false},
		{SeverityInfo, false},
	}

	for _, tt := range tests {
		issue := Issue{Severity: tt.severity}
		if got := issue.IsError(); got != tt.want {
			t.Errorf("Issue{Severity: %s}.IsError() = %v; want %v", tt.severity, got, tt.want)
		}
	}
}

func TestIssueBuilder(t *testing.T) {
	tests := []struct {
		name    string
		builder *IssueBuilder
		want    Severity
	}{
		{"info", Info("msg"), SeverityInfo},
		{"warning", Warning("msg"), SeverityWarning},
		{"error", Error("msg"), SeverityError},
		{"fatal", Fatal("msg"), SeverityFatal},
	}

	for _, tt := range tests {
		issue := tt.builder.At("Patient", "P1", "birthdate")
		if issue.Severity != tt.want {
			t.Errorf("%s builder: Severity = %s; want %s", tt.name, issue.Severity, tt.want)
		}
		if issue.Message != "msg" {
			t.Errorf("%s builder: Message = %q; want %q", tt.name, issue.Message, "msg")
		}
		wantLoc := Location{EntityType: "Patient", ID: "P1", Attribute: "birthdate"}
		if issue.Location != wantLoc {
			t.Errorf("%s builder: Location = %+v; want %+v", tt.name, issue.Location, wantLoc)
		}
	}
}

func TestIssue_String(t *testing.T) {
	issue := Error("Missing BirthDate").At("Patient", "P1", "birthdate")
	want := "error: Missing BirthDate at Patient/P1.birthdate"
	if got := issue.String(); got != want {
		t.Errorf("Issue.String() = %q; want %q", got, want)
	}
}

func TestIssue_JSON(t *testing.T) {
	issue := Warning("Missing Insurance").At("Patient", "P1", "insurance")

	data, err := json.Marshal(issue)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"severity":"warning","message":"Missing Insurance","location":{"entityType":"Patient","id":"P1","attribute":"insurance"}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s; want %s", data, want)
	}
}
