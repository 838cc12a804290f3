package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckFormatCompatibility checks whether a persisted board document with the
// given format version can be loaded by this library.
// Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - An empty version is treated as the current format (documents written
//     before versioning was introduced)
//   - If either version is "main" (development build), compatibility check is skipped
//   - Major versions must match exactly
//   - Minor and patch versions can differ (e.g., a 1.2.0 document loads on 1.0.0)
//
// Examples:
//   - Library format 1.0.0, document 1.0.0 -> OK (exact match)
//   - Library format 1.0.0, document 1.3.2 -> OK (minor/patch differ)
//   - Library format 1.0.0, document 2.0.0 -> ERROR (major differs)
//   - Library format 1.0.0, document main  -> OK (dev build, skip check)
func CheckFormatCompatibility(documentVersion string) error {
	// Strip 'v' prefix if present for consistency
	documentVersion = strings.TrimPrefix(documentVersion, "v")

	if documentVersion == "" {
		return nil
	}

	// Skip version check for "main" (development builds)
	if documentVersion == "main" || BoardFormatVersion == "main" {
		return nil
	}

	formatSemver, err := semver.NewVersion(BoardFormatVersion)
	if err != nil {
		return fmt.Errorf("invalid board format version '%s': %w", BoardFormatVersion, err)
	}

	documentSemver, err := semver.NewVersion(documentVersion)
	if err != nil {
		return fmt.Errorf("invalid document version '%s': %w", documentVersion, err)
	}

	if formatSemver.Major() != documentSemver.Major() {
		return fmt.Errorf("major version mismatch: library format is %d.x.x but document requires %d.x.x",
			formatSemver.Major(), documentSemver.Major())
	}

	return nil
}
