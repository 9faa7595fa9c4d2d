package pipeline

import "testing"

func TestAppliesTo(t *testing.T) {
	unconditional := Step{Name: "build"}
	linuxOnly := Step{Name: "strip", Platforms: []Platform{Linux}}

	for _, p := range Matrix() {
		if !unconditional.appliesTo(p) {
			t.Fatalf("unconditional step does not apply to %q", p)
		}
	}
	if !unconditional.appliesTo("") {
		t.Fatal("unconditional step does not apply to the empty platform")
	}

	if !linuxOnly.appliesTo(Linux) {
		t.Fatal("linux step does not apply to linux")
	}
	if linuxOnly.appliesTo(Windows) || linuxOnly.appliesTo(MacOS) {
		t.Fatal("linux step applies to a non-linux platform")
	}
}

func TestExpand(t *testing.T) {
	steps := []Step{
		{Name: "build"},
		{Name: "strip", Platforms: []Platform{Linux}},
		{Name: "rename", Platforms: []Platform{Windows}},
		{Name: "stage"},
	}

	tests := []struct {
		platform Platform
		want     []string
	}{
		{Linux, []string{"build", "strip", "stage"}},
		{Windows, []string{"build", "rename", "stage"}},
		{MacOS, []string{"build", "stage"}},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			got := expand(steps, tt.platform)
			if len(got) != len(tt.want) {
				t.Fatalf("expanded %d steps, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Fatalf("step[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestExpandPreservesOrder(t *testing.T) {
	steps := []Step{
		{Name: "a"},
		{Name: "b", Platforms: []Platform{MacOS}},
		{Name: "c"},
	}

	got := expand(steps, MacOS)
	if len(got) != 3 || got[0].Name != "a" || got[1].Name != "b" || got[2].Name != "c" {
		names := make([]string, len(got))
		for i, s := range got {
			names[i] = s.Name
		}
		t.Fatalf("order = %v, want [a b c]", names)
	}
}
