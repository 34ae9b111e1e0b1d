package osutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SearchUp walks from dir upwards through its parent directories looking for a
// regular file named name. The search includes dir itself. It returns the full
// path of the first match, walking no further once one is found. If the
// filesystem root is reached without a match, ok is false and no error is
// returned.
func SearchUp(dir string, name string) (path string, ok bool, err error) {
	searchDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolving path: %w", err)
	}

	for {
		candidate := filepath.Join(searchDir, name)
		stat, err := os.Stat(candidate)
		if os.IsNotExist(err) || (err == nil && stat.IsDir()) {
			parent := filepath.Dir(searchDir)
			if parent == searchDir {
				return "", false, nil
			}
			searchDir = parent
		} else if err == nil {
			return candidate, true, nil
		} else {
			return "", false, fmt.Errorf("searching for %s: %w", name, err)
		}
	}
}
