// Package build describes the running binary.
package build

import "strings"

// RepoURL is the project home.
const RepoURL = "https://github.com/bnema/linkpeek"

// Info is filled from ldflags at link time.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Dev reports whether the binary was built without release ldflags.
func (i Info) Dev() bool {
	return i.Version == "" || i.Version == "dev"
}

// String is the one-line form used by --version.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(orUnknown(i.Version))
	if i.Commit != "" && i.Commit != "unknown" {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		sb.WriteString(" (" + commit + ")")
	}
	if i.GoVersion != "" {
		sb.WriteString(" " + i.GoVersion)
	}
	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
