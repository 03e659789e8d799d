// Package compileinfo reports which commit a snpscan binary was built from,
// so that exported SNP tables can be traced back to the code that made them.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Binary     string
	Module     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.GoVersion == "" {
		return "No build information is embedded in this binary."
	}

	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	commit := c.Commit
	if commit == "" {
		commit = "unknown"
	}

	return fmt.Sprintf("This %s binary (%s %s) was built with %s at commit %s at time %v.%s", c.Binary, c.Module, c.Version, c.GoVersion, commit, c.CommitTime, mod)
}

// FromBuildInfo extracts the fields of interest from Go's embedded build
// information.
func FromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{}
	if z == nil {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Binary = z.Path
	out.Module = z.Main.Path
	out.Version = z.Main.Version
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return FromBuildInfo(z)
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
