package homedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Get is the directory holding datekit's own files, e.g. ~/.config/datekit.
func Get() (string, error) {
	dir, err := os.UserConfigDir()

	if err != nil {
		return "", fmt.Errorf("homedir: could not find config dir. %w", err)
	}

	return filepath.Join(dir, "datekit"), nil
}
