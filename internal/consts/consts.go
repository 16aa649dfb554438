package consts

import (
	"os"
	"path/filepath"
)

const Name = "fluentmoji"

var (
	CacheDir  string
	ConfigDir string
)

func init() {
	CacheDir = userDir(os.UserCacheDir)
	ConfigDir = userDir(os.UserConfigDir)
}

// userDir resolves a per-user directory for the app, falling back to the
// temp dir when the OS does not provide one.
func userDir(base func() (string, error)) string {
	dir, err := base()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, Name)
}
