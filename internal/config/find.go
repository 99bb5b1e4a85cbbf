package config

import (
	"os"
	"path/filepath"
)

// FileName is the name of the config file looked up by Find.
const FileName = ".fieldguard.yaml"

// FileNameAlt is the alternate name of the config file.
const FileNameAlt = ".fieldguard.yml"

// Find walks up from dir looking for a config file. It returns an empty
// string if there is none.
func Find(dir string) string {
	for {
		for _, name := range []string{FileName, FileNameAlt} {
			path := filepath.Join(dir, name)
			if st, err := os.Stat(path); err == nil && !st.IsDir() {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
