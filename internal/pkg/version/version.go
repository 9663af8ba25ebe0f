// Package version carries build information injected with -ldflags, e.g.
//
//	-X homeo-service/internal/pkg/version.gitVersion=v1.2.0
package version

import (
	"fmt"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/gosuri/uitable"
)

var (
	gitVersion   = "v0.0.0-develop"
	gitCommit    = "unknown"
	gitTreeState = ""
	buildDate    = "1970-01-01T00:00:00Z"
)

type Info struct {
	GitVersion   string `json:"gitVersion" yaml:"gitVersion"`
	GitCommit    string `json:"gitCommit" yaml:"gitCommit"`
	GitTreeState string `json:"gitTreeState,omitempty" yaml:"gitTreeState,omitempty"`
	BuildDate    string `json:"buildDate" yaml:"buildDate"`
	GoVersion    string `json:"goVersion" yaml:"goVersion"`
	Compiler     string `json:"compiler" yaml:"compiler"`
	Platform     string `json:"platform" yaml:"platform"`
}

func (info Info) String() string {
	if info.GitTreeState == "dirty" {
		return info.GitVersion + "-dirty"
	}
	return info.GitVersion
}

func (info Info) ToJSON() (string, error) {
	payload, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal version info: %w", err)
	}
	return string(payload), nil
}

// Text renders the info as an aligned two column table.
func (info Info) Text() string {
	table := uitable.New()
	table.RightAlign(0)
	table.MaxColWidth = 80
	table.Separator = " "
	table.AddRow("gitVersion:", info.GitVersion)
	table.AddRow("gitCommit:", info.GitCommit)
	if info.GitTreeState != "" {
		table.AddRow("gitTreeState:", info.GitTreeState)
	}
	table.AddRow("buildDate:", info.BuildDate)
	table.AddRow("goVersion:", info.GoVersion)
	table.AddRow("compiler:", info.Compiler)
	table.AddRow("platform:", info.Platform)
	return table.String()
}

func Get() Info {
	return Info{
		GitVersion:   gitVersion,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
