package scanner

import "path/filepath"

// resolveLink returns the absolute target of the symlink at path, or path
// itself if the link cannot be resolved.
func resolveLink(path string) string {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return target
	}
	return abs
}
