package version

import (
	"runtime/debug"
	"testing"
)

func TestShortCommit(t *testing.T) {
	tests := []struct {
		rev   string
		dirty bool
		want  string
	}{
		{"0123456789abcdef", false, "0123456"},
		{"0123456789abcdef", true, "0123456-dirty"},
		{"abc", false, "abc"},
	}

	for _, tt := range tests {
		if got := shortCommit(tt.rev, tt.dirty); got != tt.want {
			t.Errorf("shortCommit(%q, %v) = %q, want %q", tt.rev, tt.dirty, got, tt.want)
		}
	}
}

func TestFromBuildInfo(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })

	tests := []struct {
		name        string
		info        debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name: "tagged module",
			info: debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fedcba9876543210"}},
			},
			wantVersion: "v0.3.0",
			wantCommit:  "fedcba9",
		},
		{
			name: "local build",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "fedcba9876543210"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2024-03-05T10:00:00Z"},
				},
			},
			wantVersion: "dev-20240305",
			wantCommit:  "fedcba9-dirty",
		},
		{
			name:        "no vcs",
			info:        debug.BuildInfo{},
			wantVersion: "",
			wantCommit:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = "", ""
			fromBuildInfo(&tt.info)
			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestFromBuildInfo_KeepsLdflags(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })

	Version, Commit = "v1.0.0", "1234567"
	fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}})

	if got := Full(); got != "v1.0.0 (commit: 1234567)" {
		t.Errorf("Full() = %q, want %q", got, "v1.0.0 (commit: 1234567)")
	}
}
