package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	z := &debug.BuildInfo{
		GoVersion: "go1.18",
		Path:      "github.com/carbocation/snpscan/cmd/snpscan",
		Main:      debug.Module{Path: "github.com/carbocation/snpscan", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2022-06-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	c := FromBuildInfo(z)
	if c.Commit != "abc123" || !c.Modified || c.Module != "github.com/carbocation/snpscan" {
		t.Errorf("Got %+v", c)
	}

	s := c.String()
	for _, expected := range []string{"cmd/snpscan", "abc123", "go1.18", "modified"} {
		if !strings.Contains(s, expected) {
			t.Errorf("%q does not mention %s", s, expected)
		}
	}
}

func TestEmpty(t *testing.T) {
	if s := FromBuildInfo(nil).String(); s != "No build information is embedded in this binary." {
		t.Errorf("Got %q", s)
	}
}
