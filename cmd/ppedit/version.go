package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." for release builds; otherwise
// filled from the module build info.
var (
	version = ""
	commit  = ""
	date    = ""
)

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Built     string `json:"built"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildVersion merges linker-provided values with debug.ReadBuildInfo.
func buildVersion(info *debug.BuildInfo, ok bool) versionInfo {
	v := versionInfo{Version: version, Commit: commit, Built: date}
	if ok {
		v.GoVersion = info.GoVersion
		if v.Version == "" && info.Main.Version != "" {
			v.Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if v.Commit == "" {
					v.Commit = s.Value
				}
			case "vcs.time":
				if v.Built == "" {
					v.Built = s.Value
				}
			case "vcs.modified":
				v.Modified = s.Value == "true"
			}
		}
	}
	if v.Version == "" {
		v.Version = "(devel)"
	}
	if v.Commit == "" {
		v.Commit = "none"
	}
	if v.Built == "" {
		v.Built = "unknown"
	}
	return v
}

func runVersion() error {
	v := buildVersion(debug.ReadBuildInfo())
	if jsonOut {
		return printJSON(v)
	}
	commitLine := v.Commit
	if v.Modified {
		commitLine += " (modified)"
	}
	fmt.Printf("ppedit %s\n", v.Version)
	fmt.Printf("  commit: %s\n", commitLine)
	fmt.Printf("  built: %s\n", v.Built)
	if v.GoVersion != "" {
		fmt.Printf("  go: %s\n", v.GoVersion)
	}
	return nil
}
