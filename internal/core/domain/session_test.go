package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestNewSessionRecord(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 4, 5, 0, time.Local)
	windows := []Window{{"https://a.example", "https://b.example"}, {"https://c.example"}}

	r := NewSessionRecord(windows, now)

	if r.LastUpdated != "2024/06/01 13:04:05" {
		t.Errorf("LastUpdated = %q, want %q", r.LastUpdated, "2024/06/01 13:04:05")
	}
	if !reflect.DeepEqual(r.Windows, windows) {
		t.Errorf("Windows = %v, want %v", r.Windows, windows)
	}
	if r.WindowCount() != 2 {
		t.Errorf("WindowCount() = %d, want 2", r.WindowCount())
	}
	if r.TabCount() != 3 {
		t.Errorf("TabCount() = %d, want 3", r.TabCount())
	}
}

func TestNewSessionRecord_NilWindows(t *testing.T) {
	r := NewSessionRecord(nil, time.Now())
	if r.Windows == nil {
		t.Fatal("Windows should be an empty slice, not nil")
	}
	if r.WindowCount() != 0 || r.TabCount() != 0 {
		t.Errorf("counts = %d/%d, want 0/0", r.WindowCount(), r.TabCount())
	}
}

func TestSessionRecord_UpdatedAt(t *testing.T) {
	r := SessionRecord{LastUpdated: "2024/01/02 03:04:05"}
	got, err := r.UpdatedAt()
	if err != nil {
		t.Fatalf("UpdatedAt() error = %v", err)
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("UpdatedAt() = %v, want %v", got, want)
	}

	bad := SessionRecord{LastUpdated: "2024-01-02T03:04:05Z"}
	if _, err := bad.UpdatedAt(); err == nil {
		t.Error("UpdatedAt() should fail for a foreign layout")
	}
}

func TestSessions_HasAndNames(t *testing.T) {
	s := Sessions{
		"work":   {LastUpdated: "2024/01/01 00:00:00"},
		"home":   {LastUpdated: "2024/01/01 00:00:00"},
		"travel": {LastUpdated: "2024/01/01 00:00:00"},
	}

	if !s.Has("work") {
		t.Error("Has(work) = false, want true")
	}
	if s.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}

	want := []string{"home", "travel", "work"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "work", false},
		{"with spaces", "my work", false},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !IsDomainError(err, ErrSessionNameInvalid.Code) {
				t.Errorf("error code = %q, want %q", GetErrorCode(err), ErrSessionNameInvalid.Code)
			}
		})
	}
}
