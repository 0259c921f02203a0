// Package models holds types shared by the programs entrypoints.
package models

import "fmt"

// BuildInformation is set at build time with linker flags.
type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

// VersionString returns the version, suffixed with the short commit
// hash for the latest development build.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	const commitShortHashLength = 7
	if len(b.Commit) < commitShortHashLength {
		return "latest"
	}
	return b.Version + "-" + b.Commit[:commitShortHashLength]
}

func (b BuildInformation) String() string {
	return fmt.Sprintf("%s (commit %s, built on %s)",
		b.VersionString(), b.Commit, b.Date)
}
