// Package buildinfo exposes build metadata injected at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set via -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/payego/payego-cli/internal/buildinfo.buildVersion=v1.2.0"
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
