package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit := Version, GitCommit
	return func() {
		Version = origVersion
		GitCommit = origCommit
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if len(info.GitCommit) > 7 {
		t.Errorf("expected commit truncated to 7 chars, got %q", info.GitCommit)
	}
}

func TestGetLinkTimeValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "0123456789abcdef"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("expected version 1.2.0, got %q", info.Version)
	}
	if info.GitCommit != "0123456" {
		t.Errorf("expected truncated commit, got %q", info.GitCommit)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "1.0.0"}, "1.0.0"},
		{"with commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "dev", GitCommit: "abc1234", IsDirty: true}, "dev-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if !strings.HasPrefix(tc.info.String(), tc.info.Version) {
				t.Error("expected version prefix")
			}
		})
	}
}
