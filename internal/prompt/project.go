package prompt

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxProjectFiles caps how many files a project-wide scan will embed in a
// single prompt. Individual files are still unbounded.
const MaxProjectFiles = 20

var ignoredDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"__pycache__":  {},
	".vscode":      {},
	"venv":         {},
}

// CollectProject walks root and concatenates file contents with per-file
// headers, stopping after MaxProjectFiles. Unreadable files and
// directories are skipped silently; the walk itself never fails.
func CollectProject(root string) (string, int) {
	var b strings.Builder
	count := 0

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, ok := ignoredDirs[d.Name()]; ok {
				return fs.SkipDir
			}
			return nil
		}
		if count >= MaxProjectFiles {
			return fs.SkipAll
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		fmt.Fprintf(&b, "--- File: %s ---\n%s\n\n", rel, data)
		count++
		return nil
	})

	return b.String(), count
}
