package persona

import "strings"

// pathSep separates segments of a choice path. Every segment names a field;
// the empty path names the schema root.
const pathSep = "."

func splitPath(path string) []string {
	return strings.Split(path, pathSep)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + pathSep + name
}
