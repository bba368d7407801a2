// Package platform isolates the OS-specific filesystem quirks of the
// generator so the core pipeline stays deterministic and testable. The
// platform tag is injected, never re-derived inside the pipeline.
package platform

import (
	"regexp"
	"runtime"
	"strings"
)

// Platform tags the OS family whose path conventions apply.
type Platform string

const (
	Darwin  Platform = "darwin"
	Windows Platform = "windows"
	Linux   Platform = "linux"
)

// Current returns the platform of the running process.
func Current() Platform {
	switch runtime.GOOS {
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	}
	return Linux
}

var windowsDrivePrefix = regexp.MustCompile(`^/[A-Za-z]:`)

// Roots an absolute macOS path may legitimately start with. A path outside
// these comes from a host application that prepends a volume label; the
// label segment is dropped and the remainder re-rooted at /.
var darwinRoots = map[string]struct{}{
	"Applications": {},
	"Library":      {},
	"System":       {},
	"Users":        {},
	"Volumes":      {},
	"home":         {},
	"opt":          {},
	"private":      {},
	"tmp":          {},
	"usr":          {},
	"var":          {},
}

// Normalize applies the platform-specific path corrections.
//
// On Windows a URI-style leading separator before a drive letter is
// stripped ("/C:/out" -> "C:/out"). On macOS an absolute path whose first
// segment is not a known root loses that segment ("/Macintosh HD/Users/x"
// -> "/Users/x"). Other platforms pass through unchanged.
func Normalize(path string, p Platform) string {
	switch p {
	case Windows:
		if windowsDrivePrefix.MatchString(path) {
			return path[1:]
		}
	case Darwin:
		if !strings.HasPrefix(path, "/") {
			return path
		}
		segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
		if len(segments) < 2 {
			return path
		}
		if _, ok := darwinRoots[segments[0]]; !ok {
			return "/" + strings.Join(segments[1:], "/")
		}
	}
	return path
}
