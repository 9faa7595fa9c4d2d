package pipeline

import "testing"

func TestNewTrigger(t *testing.T) {
	a := NewTrigger("release", "4b825dc6")
	b := NewTrigger("release", "4b825dc6")

	if a.ID == "" || b.ID == "" {
		t.Fatal("trigger ID is empty")
	}
	if a.ID == b.ID {
		t.Fatal("trigger IDs are not unique")
	}
	if a.Branch != "release" || a.Revision != "4b825dc6" {
		t.Fatalf("trigger = %+v", a)
	}
}

func TestTriggerReleases(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		release string
		want    bool
	}{
		{"release branch", "release", "release", true},
		{"feature branch", "feature/foo", "release", false},
		{"main branch", "main", "release", false},
		{"empty branch", "", "release", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trig := NewTrigger(tt.branch, "4b825dc6")
			if got := trig.Releases(tt.release); got != tt.want {
				t.Fatalf("Releases(%q) = %v, want %v", tt.release, got, tt.want)
			}
		})
	}
}
