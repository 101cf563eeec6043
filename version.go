// Package codepoint is the root of the code point cursor module. It carries
// the module version; the functionality lives in buffer, cursor and
// tokenizer.
package codepoint

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

// ParseSemver parses v (without a leading `v`).
func ParseSemver(v string) (Semver, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, false
	}
	var s Semver
	var err error
	if s.Major, err = strconv.Atoi(m[1]); err != nil {
		return Semver{}, false
	}
	if s.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Semver{}, false
	}
	if s.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Semver{}, false
	}
	s.Pre, s.Build = m[4], m[5]
	return s, true
}

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, ok := ParseSemver(v)
	return ok
}
