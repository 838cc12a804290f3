package version

// Version is the current version of the argo-board library.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-board/internal/version.Version=1.2.3"
// The default value "main" indicates a development build.
var Version = "v1.0.0"

// BoardFormatVersion is the version stamped into every persisted board
// document. Documents with a different major version are not loadable.
const BoardFormatVersion = "1.0.0"

// GetVersion returns the current version of the library.
func GetVersion() string {
	return Version
}
