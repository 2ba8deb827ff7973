package preset

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// FormatVersion is the preset file format written by this build.
const FormatVersion = "1.0"

var supportedFormats = version.MustConstraints(version.NewConstraint(">= 1.0, < 2.0"))

// CheckVersion reports whether a preset file declaring v can be read. An
// empty version is treated as FormatVersion.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}

	fileVer, err := version.NewVersion(v)
	if err != nil {
		return &VersionError{Version: v, Reason: err.Error()}
	}
	if !supportedFormats.Check(fileVer) {
		return &VersionError{Version: v, Reason: fmt.Sprintf("supported versions are %s", supportedFormats)}
	}
	return nil
}
