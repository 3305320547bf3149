// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"runtime/debug"
	"strings"
	"testing"
)

// withBuildVars swaps the link-time variables for the duration of a test.
func withBuildVars(t *testing.T, v, c, d string) {
	t.Helper()
	origV, origC, origD := version, gitCommit, buildDate
	version, gitCommit, buildDate = v, c, d
	t.Cleanup(func() { version, gitCommit, buildDate = origV, origC, origD })
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	withBuildVars(t, "dev", "dev", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != "dev" || d != "" {
		t.Fatalf("expected default commit and date, got %q %q", c, d)
	}
}

func TestResolveBuildVersion_LinkerWins(t *testing.T) {
	withBuildVars(t, "v2.0.0", "abc1234", "2026-01-02T03:04:05Z")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "ffffff"},
			{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v2.0.0" || c != "abc1234" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("link-time values should win, got %q %q %q", v, c, d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	withBuildVars(t, "dev", "dev", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/wrapper", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v1.5.1-0.20251130131337-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v1.5.1-0.20251130131337-d1692e4643ee" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	withBuildVars(t, "dev", "dev", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123abcd"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "dev" || c != "0123abcd" || d != "2026-03-04T05:06:07Z" {
		t.Fatalf("unexpected %q %q %q", v, c, d)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	withBuildVars(t, "dev", "deadbeef", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}

func TestCompositeVersion(t *testing.T) {
	cases := []struct {
		v, c, d string
		want    string
	}{
		{"v1.0.0", "dev", "", "v1.0.0"},
		{"v1.0.0", "abc", "", "v1.0.0 (abc)"},
		{"abc", "abc", "", "abc"},
		{"v1.0.0", "abc", "2026-01-01", "v1.0.0 (abc) built: 2026-01-01"},
	}
	for _, c := range cases {
		if got := compositeVersion(c.v, c.c, c.d); got != c.want {
			t.Fatalf("compositeVersion(%q, %q, %q) = %q, want %q", c.v, c.c, c.d, got, c.want)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	setupTestEnv(t)
	withBuildVars(t, "v9.9.9", "cafe", "2026-05-06")
	out, err := executeCommand(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	for _, want := range []string{"pocketkit v9.9.9", "commit: cafe", "built:  2026-05-06"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
