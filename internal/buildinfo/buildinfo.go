// Package buildinfo reports the version stamped into the binary with
// -ldflags "-X github.com/vltrn/datav/internal/buildinfo.buildVersion=...".
package buildinfo

import (
	"fmt"
	"io"

	"github.com/vltrn/datav/internal/common"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Version is the stamped build version, or the application version when
// the binary was built without ldflags.
func Version() string {
	if buildVersion == "" {
		return common.AppVersion
	}
	return buildVersion
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version())
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
