package paths

import (
	"os"
	"path"
)

// baseResourcePath is tried relative to the current directory before
// falling back to the user's config directory.
const baseResourcePath = ".oric8"

// ResourcePath returns the resource string, representing a resource to be
// loaded or saved (preferences, snapshots, symbol tables), prepended with
// an operating-system-appropriate base directory.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return path.Join(p...)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return path.Join(home, baseResourcePath[1:])
}
