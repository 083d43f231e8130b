package state

import "strings"

// ResolvePath walks a decoded JSON value along a dot-separated path,
// e.g. "project.target_python_version". It returns the value at the path
// and whether the full path resolved. Only object keys are navigated;
// hitting a non-object mid-path resolves to (nil, false).
func ResolvePath(doc any, path string) (any, bool) {
	if path == "" {
		return doc, true
	}

	current := doc
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
