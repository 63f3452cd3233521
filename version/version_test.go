package version

import (
	"strings"
	"testing"
	"time"
)

func saveAndRestore() func() {
	v, c, b, bt := Version, GitCommit, GitBranch, BuildTime
	return func() {
		Version, GitCommit, GitBranch, BuildTime = v, c, b, bt
	}
}

func TestGetFromLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abcdef1234567"
	GitBranch = "main"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("expected '1.2.0', got %q", info.Version)
	}
	if info.GitCommit != "abcdef1" {
		t.Errorf("expected commit truncated to 7 chars, got %q", info.GitCommit)
	}
	if !info.BuildDate.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("unexpected build date %v", info.BuildDate)
	}
}

func TestInfoIsRelease(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"dev", Info{Version: "dev"}, false},
		{"tagged", Info{Version: "1.0.0"}, true},
		{"dirty tree", Info{Version: "1.0.0", Dirty: true}, false},
		{"dirty suffix", Info{Version: "1.0.0-dirty"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.IsRelease(); got != tc.want {
				t.Errorf("IsRelease() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInfoShort(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "dev"}, "dev"},
		{Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{Info{Version: "1.0.0", GitCommit: "abc1234", Dirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		if got := tc.info.Short(); got != tc.want {
			t.Errorf("Short() = %q, want %q", got, tc.want)
		}
	}
}

func TestInfoString(t *testing.T) {
	built := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	main := Info{Version: "1.0.0", GitCommit: "abc1234", GitBranch: "main", BuildDate: built}
	if got := main.String(); got != "1.0.0-abc1234 (built 2024-01-15T10:30:00Z)" {
		t.Errorf("unexpected string %q", got)
	}

	feature := Info{Version: "1.0.0", GitBranch: "feature/x"}
	if !strings.Contains(feature.String(), "feature/x") {
		t.Errorf("expected feature branch in %q", feature.String())
	}

	if got := (Info{Version: "dev"}).String(); got != "dev" {
		t.Errorf("expected plain dev, got %q", got)
	}
}
