// Package evidence locates and parses the JSON artifacts that scanner and
// test tooling leave behind (conversion reports, test results, lint
// comparisons). Evidence is optional input: a file that is absent or
// unparseable reads as "not produced yet", never as an error.
package evidence

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Locator searches a fixed list of directories for evidence files by exact
// filename. Directories are searched in order; the first hit wins.
type Locator struct {
	dirs []string
}

// NewLocator returns a Locator over the given directories. Empty entries
// are skipped.
func NewLocator(dirs ...string) *Locator {
	l := &Locator{}
	for _, d := range dirs {
		if d != "" {
			l.dirs = append(l.dirs, d)
		}
	}
	return l
}

// Find returns the full path of the first directory containing name.
// The second return is false when no directory has the file.
func (l *Locator) Find(name string) (string, bool) {
	for _, dir := range l.dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load locates name and parses it as a JSON object. The returned path is
// the resolved file location. Malformed JSON is treated the same as a
// missing file: (nil, "", false).
func (l *Locator) Load(name string) (map[string]any, string, bool) {
	path, ok := l.Find(name)
	if !ok {
		return nil, "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", false
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "", false
	}
	return doc, path, true
}
